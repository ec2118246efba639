package wallapop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"wallapop-bridge/internal/domain/model"
)

// FetchByID implements repository.ItemRepository.
func (c *Client) FetchByID(ctx context.Context, itemID string) (*model.ItemDetails, error) {
	body, err := c.fetchJSON(ctx, "/items/"+url.PathEscape(itemID), nil)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode item response: %w", err)
	}

	details := normalizeItemDetails(raw, c.webBase)
	if details.ID == "" {
		details.ID = itemID
	}
	return &details, nil
}

// normalizeItemDetails is a pure, total mapping from a raw item payload to
// ItemDetails. Any object missing every optional field still yields a
// well-formed value: price 0, counters nil, image count 0. Unlike search
// items, a detail view defaults the price to 0 so the field is always
// usable.
func normalizeItemDetails(raw map[string]any, webBase string) model.ItemDetails {
	flags := obj(raw, "flags")

	details := model.ItemDetails{
		ID:          ident(raw, "id"),
		Title:       text(raw, "title"),
		Description: text(raw, "description"),
		Currency:    defaultCurrency,
		City:        str(obj(raw, "location"), "city"),
		Slug:        str(raw, "web_slug"),
		ImageCount:  len(arr(raw, "images")),
		SellerID:    sellerOf(raw),
		Reserved:    flag(flags, "reserved") || flag(obj(raw, "reserved"), "flag"),
		Sold:        flag(flags, "sold") || flag(obj(raw, "sold"), "flag"),
		Shippable:   flag(obj(raw, "shipping"), "item_is_shippable") || flag(flags, "shippable"),
		CreatedAt:   str(raw, "created_at"),
	}

	if amount, currency := priceOf(raw); amount != nil {
		details.Price = *amount
		if currency != "" {
			details.Currency = currency
		}
	}

	details.URL = canonicalItemURL(webBase, details.Slug)

	if counters := obj(raw, "counters"); counters != nil {
		views, _ := num(counters, "views")
		favorites, _ := num(counters, "favorites")
		conversations, _ := num(counters, "conversations")
		details.Counters = &model.ItemCounters{
			Views:         int(views),
			Favorites:     int(favorites),
			Conversations: int(conversations),
		}
	}
	return details
}

package wallapop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"wallapop-bridge/internal/domain/model"
)

const searchPath = "/general/search"

// Reference point applied when the caller gives no geo center (Madrid city
// centre). Defaults are applied only when the field is unset; an explicit
// caller value is never overwritten.
const (
	defaultLatitude  = 40.41956
	defaultLongitude = -3.69196
)

// defaultCurrency is assumed whenever the upstream omits one.
const defaultCurrency = "EUR"

// Search implements repository.ItemRepository.
func (c *Client) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResultPage, error) {
	body, err := c.fetchJSON(ctx, searchPath, searchParams(query))
	if err != nil {
		return nil, err
	}
	return parseSearchPage(body, c.webBase, query.Limit)
}

// searchParams encodes the query for the upstream. A pagination cursor is
// exclusive: when present, the upstream ignores every filter, so none is
// sent alongside it.
func searchParams(q model.SearchQuery) url.Values {
	v := url.Values{}
	if q.NextPage != "" {
		v.Set("next_page", q.NextPage)
		return v
	}

	v.Set("keywords", q.Keywords)

	lat, lng := defaultLatitude, defaultLongitude
	if q.Latitude != nil {
		lat = *q.Latitude
	}
	if q.Longitude != nil {
		lng = *q.Longitude
	}
	v.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	v.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))

	if q.MinPrice != nil {
		v.Set("min_sale_price", strconv.FormatInt(*q.MinPrice, 10))
	}
	if q.MaxPrice != nil {
		v.Set("max_sale_price", strconv.FormatInt(*q.MaxPrice, 10))
	}
	if q.Distance != nil {
		v.Set("distance", strconv.FormatInt(*q.Distance, 10))
	}
	if q.CategoryID != "" {
		v.Set("category_ids", q.CategoryID)
	}
	if q.Order != "" {
		v.Set("order_by", q.Order)
	}
	return v
}

// parseSearchPage maps a raw search response onto the stable schema. The
// upstream has shipped two envelope shapes for the item list; both are
// accepted here and nowhere else.
func parseSearchPage(body []byte, webBase string, limit int) (*model.SearchResultPage, error) {
	var root map[string]any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	items := arr(obj(obj(obj(root, "data"), "section"), "payload"), "items")
	if items == nil {
		items = arr(root, "search_objects")
	}

	page := &model.SearchResultPage{Items: make([]model.SearchResultItem, 0, len(items))}
	for _, entry := range items {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		page.Items = append(page.Items, normalizeSearchItem(raw, webBase))
	}
	if limit > 0 && len(page.Items) > limit {
		page.Items = page.Items[:limit]
	}

	meta := obj(root, "meta")
	page.NextPage = str(meta, "next_page")
	if total, ok := num(meta, "total"); ok {
		page.Total = int(total)
	} else {
		page.Total = len(page.Items)
	}
	return page, nil
}

// normalizeSearchItem is a pure mapping from one raw search entry to the
// simplified schema. Missing optional fields degrade to safe defaults; it
// never fails. Price is deliberately left nil when absent: search listings
// always carry one upstream, so an absent price should stay visible as such.
func normalizeSearchItem(raw map[string]any, webBase string) model.SearchResultItem {
	item := model.SearchResultItem{
		ID:        ident(raw, "id"),
		Title:     text(raw, "title"),
		Currency:  defaultCurrency,
		City:      str(obj(raw, "location"), "city"),
		Slug:      str(raw, "web_slug"),
		SellerID:  sellerOf(raw),
		Reserved:  flag(obj(raw, "flags"), "reserved") || flag(obj(raw, "reserved"), "flag"),
		Shippable: flag(obj(raw, "shipping"), "item_is_shippable") || flag(obj(raw, "flags"), "shippable"),
		CreatedAt: str(raw, "created_at"),
	}

	if amount, currency := priceOf(raw); amount != nil {
		item.Price = amount
		if currency != "" {
			item.Currency = currency
		}
	}

	item.URL = canonicalItemURL(webBase, item.Slug)

	if d, ok := num(raw, "distance"); ok {
		item.Distance = &d
	}
	item.Thumbnail = firstImageMedium(raw)
	return item
}

// priceOf prefers the nested cash amount, then the flat amount inside the
// price object, then a bare numeric price. Returns nil when none is present.
func priceOf(raw map[string]any) (*float64, string) {
	price := obj(raw, "price")
	if cash := obj(price, "cash"); cash != nil {
		if v, ok := num(cash, "amount"); ok {
			return &v, str(cash, "currency")
		}
	}
	if v, ok := num(price, "amount"); ok {
		return &v, str(price, "currency")
	}
	if v, ok := num(raw, "price"); ok {
		return &v, str(raw, "currency")
	}
	return nil, ""
}

func sellerOf(raw map[string]any) string {
	if id := ident(raw, "user_id"); id != "" {
		return id
	}
	return ident(obj(raw, "user"), "id")
}

// firstImageMedium keeps only the first image's medium-size URL; search
// results do not need the whole gallery.
func firstImageMedium(raw map[string]any) string {
	images := arr(raw, "images")
	if len(images) == 0 {
		return ""
	}
	first, ok := images[0].(map[string]any)
	if !ok {
		return ""
	}
	if u := str(obj(first, "urls"), "medium"); u != "" {
		return u
	}
	return str(first, "medium")
}

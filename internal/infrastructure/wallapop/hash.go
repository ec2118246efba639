package wallapop

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wallapop-bridge/internal/domain/model"
)

// nextDataSelector locates the hydration payload the rendering framework
// embeds for the client. The whole scrape depends on this shape staying
// stable, which is why every piece of it lives in this file and nowhere
// else.
const nextDataSelector = "script#__NEXT_DATA__"

// ResolveHash implements repository.HashResolver. A full URL is used
// verbatim; a bare slug is expanded to the canonical item page first.
func (c *Client) ResolveHash(ctx context.Context, urlOrSlug string) (string, error) {
	pageURL := urlOrSlug
	if !strings.HasPrefix(urlOrSlug, "http://") && !strings.HasPrefix(urlOrSlug, "https://") {
		pageURL = canonicalItemURL(c.webBase, urlOrSlug)
	}

	body, err := c.fetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", &model.HashNotFoundError{Reason: "page is not parseable HTML"}
	}
	return extractHash(doc)
}

// extractHash pulls the internal item identifier out of the embedded JSON.
// Every failure mode is a HashNotFoundError: the page was fetched fine, the
// expected data just was not there.
func extractHash(doc *goquery.Document) (string, error) {
	script := doc.Find(nextDataSelector).Text()
	if script == "" {
		return "", &model.HashNotFoundError{Reason: "__NEXT_DATA__ script not found"}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(script), &data); err != nil {
		return "", &model.HashNotFoundError{Reason: "embedded data is not valid JSON"}
	}

	hash := ident(obj(obj(obj(data, "props"), "pageProps"), "item"), "id")
	if hash == "" {
		return "", &model.HashNotFoundError{Reason: "props.pageProps.item.id is absent"}
	}
	return hash, nil
}

package wallapop

import (
	"testing"

	"wallapop-bridge/internal/domain/model"
)

func TestSearchParams_cursorSuppressesAllFilters(t *testing.T) {
	t.Parallel()

	min := int64(10)
	lat := 41.38
	query := model.SearchQuery{
		Keywords: "bike",
		MinPrice: &min,
		Latitude: &lat,
		Order:    model.OrderNewest,
		NextPage: "cursor-token",
	}

	v := searchParams(query)
	if got := v.Get("next_page"); got != "cursor-token" {
		t.Fatalf("next_page got %q, want cursor-token", got)
	}
	if len(v) != 1 {
		t.Fatalf("params got %v, want only next_page", v)
	}
}

func TestSearchParams_geoDefaultsOnlyWhenUnset(t *testing.T) {
	t.Parallel()

	v := searchParams(model.SearchQuery{Keywords: "bike"})
	if got := v.Get("latitude"); got != "40.41956" {
		t.Errorf("latitude got %q, want default 40.41956", got)
	}
	if got := v.Get("longitude"); got != "-3.69196" {
		t.Errorf("longitude got %q, want default -3.69196", got)
	}

	lat, lng := 41.38879, 2.15899
	v = searchParams(model.SearchQuery{Keywords: "bike", Latitude: &lat, Longitude: &lng})
	if got := v.Get("latitude"); got != "41.38879" {
		t.Errorf("latitude got %q, want caller value 41.38879", got)
	}
	if got := v.Get("longitude"); got != "2.15899" {
		t.Errorf("longitude got %q, want caller value 2.15899", got)
	}
}

func TestSearchParams_optionalFiltersOmittedWhenUnset(t *testing.T) {
	t.Parallel()

	v := searchParams(model.SearchQuery{Keywords: "bike"})
	for _, name := range []string{"min_sale_price", "max_sale_price", "distance", "category_ids", "order_by", "next_page"} {
		if v.Has(name) {
			t.Errorf("param %q should be absent, got %q", name, v.Get(name))
		}
	}

	min, max, dist := int64(5), int64(150), int64(10000)
	v = searchParams(model.SearchQuery{
		Keywords:   "bike",
		MinPrice:   &min,
		MaxPrice:   &max,
		Distance:   &dist,
		CategoryID: "24200",
		Order:      model.OrderPriceAsc,
	})
	if got := v.Get("min_sale_price"); got != "5" {
		t.Errorf("min_sale_price got %q, want 5", got)
	}
	if got := v.Get("max_sale_price"); got != "150" {
		t.Errorf("max_sale_price got %q, want 150", got)
	}
	if got := v.Get("distance"); got != "10000" {
		t.Errorf("distance got %q, want 10000", got)
	}
	if got := v.Get("category_ids"); got != "24200" {
		t.Errorf("category_ids got %q, want 24200", got)
	}
	if got := v.Get("order_by"); got != model.OrderPriceAsc {
		t.Errorf("order_by got %q, want %q", got, model.OrderPriceAsc)
	}
}

func TestParseSearchPage_sectionEnvelope(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"data": {"section": {"payload": {"items": [
			{"id": "a1", "title": "Bici de montaña", "web_slug": "bici-a1",
			 "price": {"amount": 120.5, "currency": "EUR"},
			 "location": {"city": "Madrid"}, "distance": 3.2,
			 "images": [{"urls": {"medium": "https://img.example/a1-m.jpg"}}],
			 "user_id": "u9", "reserved": {"flag": false},
			 "shipping": {"item_is_shippable": true}, "created_at": "2024-05-01T10:00:00Z"},
			{"id": "b2", "title": {"original": "Casco"}, "web_slug": "casco-b2",
			 "price": {"amount": 15}}
		]}}},
		"meta": {"next_page": "tok-2", "total": 57}
	}`)

	page, err := parseSearchPage(body, "https://es.wallapop.com", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("items len got %d, want 2", len(page.Items))
	}
	if page.NextPage != "tok-2" {
		t.Errorf("next page got %q, want tok-2", page.NextPage)
	}
	if page.Total != 57 {
		t.Errorf("total got %d, want 57", page.Total)
	}

	first := page.Items[0]
	if first.ID != "a1" {
		t.Errorf("ID got %q, want a1", first.ID)
	}
	if first.Title != "Bici de montaña" {
		t.Errorf("Title got %q", first.Title)
	}
	if first.Price == nil || *first.Price != 120.5 {
		t.Errorf("Price got %v, want 120.5", first.Price)
	}
	if first.URL != "https://es.wallapop.com/item/bici-a1" {
		t.Errorf("URL got %q", first.URL)
	}
	if first.Thumbnail != "https://img.example/a1-m.jpg" {
		t.Errorf("Thumbnail got %q", first.Thumbnail)
	}
	if first.City != "Madrid" {
		t.Errorf("City got %q, want Madrid", first.City)
	}
	if first.Distance == nil || *first.Distance != 3.2 {
		t.Errorf("Distance got %v, want 3.2", first.Distance)
	}
	if !first.Shippable {
		t.Errorf("Shippable got false, want true")
	}
	if first.SellerID != "u9" {
		t.Errorf("SellerID got %q, want u9", first.SellerID)
	}

	second := page.Items[1]
	if second.Title != "Casco" {
		t.Errorf("wrapped title got %q, want Casco", second.Title)
	}
	if second.Currency != "EUR" {
		t.Errorf("currency got %q, want default EUR", second.Currency)
	}
}

func TestParseSearchPage_legacyEnvelopeAndLimit(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"search_objects": [
			{"id": "1", "web_slug": "s1"},
			{"id": "2", "web_slug": "s2"},
			{"id": "3", "web_slug": "s3"}
		],
		"meta": {}
	}`)

	page, err := parseSearchPage(body, "https://es.wallapop.com", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("items len got %d, want limit 2", len(page.Items))
	}
	if page.Total != 2 {
		t.Errorf("total got %d, want item count when meta.total absent", page.Total)
	}
	if page.NextPage != "" {
		t.Errorf("next page got %q, want empty", page.NextPage)
	}
}

func TestParseSearchPage_countMatchesUpstream(t *testing.T) {
	t.Parallel()

	body := []byte(`{"search_objects": [{"id":"1"},{"id":"2"},{"id":"3"},{"id":"4"}]}`)
	page, err := parseSearchPage(body, "https://es.wallapop.com", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 4 {
		t.Fatalf("items len got %d, want exactly the upstream count 4", len(page.Items))
	}
	for i, item := range page.Items {
		if item.Currency != "EUR" {
			t.Errorf("item %d currency got %q, want default EUR", i, item.Currency)
		}
	}
}

func TestNormalizeSearchItem_priceCashPreferredAndAbsentStaysNil(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"id":    "x",
		"price": map[string]any{"amount": 99.0, "cash": map[string]any{"amount": 80.0, "currency": "GBP"}},
	}
	item := normalizeSearchItem(raw, "https://es.wallapop.com")
	if item.Price == nil || *item.Price != 80 {
		t.Errorf("Price got %v, want nested cash amount 80", item.Price)
	}
	if item.Currency != "GBP" {
		t.Errorf("Currency got %q, want GBP", item.Currency)
	}

	item = normalizeSearchItem(map[string]any{"id": "y"}, "https://es.wallapop.com")
	if item.Price != nil {
		t.Errorf("Price got %v, want nil when upstream omits it", *item.Price)
	}
}

func TestNormalizeSearchItem_flatNumericPrice(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"id": "x", "price": 30.0, "currency": "EUR"}
	item := normalizeSearchItem(raw, "https://es.wallapop.com")
	if item.Price == nil || *item.Price != 30 {
		t.Errorf("Price got %v, want flat 30", item.Price)
	}
}

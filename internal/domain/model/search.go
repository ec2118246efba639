package model

// Sort orders accepted by the upstream search endpoint.
const (
	OrderNewest    = "newest"
	OrderPriceAsc  = "price_low_to_high"
	OrderPriceDesc = "price_high_to_low"
	OrderClosest   = "closest"
)

// SearchQuery carries the search filters. Pointer fields distinguish "caller
// left it unset" from an explicit zero, which matters for the geo defaults
// and the price bounds. When NextPage is set the upstream ignores every other
// filter, so none of them may be sent alongside the cursor.
type SearchQuery struct {
	Keywords   string
	MinPrice   *int64
	MaxPrice   *int64
	Latitude   *float64
	Longitude  *float64
	Distance   *int64
	CategoryID string
	Order      string
	Limit      int
	NextPage   string
}

// SearchResultPage is one page of normalized search results.
type SearchResultPage struct {
	Items    []SearchResultItem `json:"items"`
	NextPage string             `json:"next_page,omitempty"`
	Total    int                `json:"total"`
}

package model

// SearchResultItem is the simplified projection of one item as it appears in
// search results. It is derived entirely from the upstream payload at read
// time and has no lifecycle of its own. URL is always re-derived from the
// slug, never taken from the upstream, so it stays deterministic.
type SearchResultItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     *float64 `json:"price,omitempty"`
	Currency  string   `json:"currency"`
	City      string   `json:"city,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Slug      string   `json:"slug"`
	URL       string   `json:"url"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	SellerID  string   `json:"seller_id,omitempty"`
	Reserved  bool     `json:"reserved"`
	Shippable bool     `json:"shippable"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// ItemDetails is the full projection of a single item. It extends the search
// fields with the description and a handful of aggregates. The image list is
// reduced to a count on purpose: callers that need pixels have the page URL.
type ItemDetails struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	City        string        `json:"city,omitempty"`
	Slug        string        `json:"slug"`
	URL         string        `json:"url"`
	ImageCount  int           `json:"image_count"`
	SellerID    string        `json:"seller_id,omitempty"`
	Reserved    bool          `json:"reserved"`
	Sold        bool          `json:"sold"`
	Shippable   bool          `json:"shippable"`
	CreatedAt   string        `json:"created_at,omitempty"`
	Counters    *ItemCounters `json:"counters,omitempty"`
}

// ItemCounters aggregates the engagement counters the upstream exposes on an
// item page. Nil on ItemDetails when the upstream sent none.
type ItemCounters struct {
	Views         int `json:"views"`
	Favorites     int `json:"favorites"`
	Conversations int `json:"conversations"`
}

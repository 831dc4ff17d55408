package models

// Earning sources reported by the dashboard service.
const (
	SourceViews         = "views"
	SourceSubscriptions = "subscriptions"
	SourceDonations     = "donations"
)

// Channel is the author's public creator identity with its totals.
type Channel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Subscribers   int64   `json:"subscribers"`
	TotalViews    int64   `json:"total_views"`
	TotalEarnings float64 `json:"total_earnings"`
}

// MonthlyEarning is one bar of the six-month earnings chart.
type MonthlyEarning struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// VideoStats is a published video as seen on the dashboard.
type VideoStats struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Views        int64   `json:"views"`
	Likes        int64   `json:"likes"`
	Comments     int64   `json:"comments"`
	Earnings     float64 `json:"earnings"`

	// CreatedAt is kept as sent; the service does not use RFC 3339.
	CreatedAt string `json:"created_at"`
}

// DashboardStats is the author's earnings dashboard.
type DashboardStats struct {
	Channel           Channel            `json:"channel"`
	EarningsBySource  map[string]float64 `json:"earnings_by_source"`
	MonthlyEarnings   []MonthlyEarning   `json:"monthly_earnings"`
	Videos            []VideoStats       `json:"videos"`
	NewSubscribers30d int64              `json:"new_subscribers_30d"`
}

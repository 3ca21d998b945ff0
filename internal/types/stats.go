package types

type PlatformStats struct {
	TotalUsers        int64    `json:"total_users"`
	TotalVendors      int64    `json:"total_vendors"`
	TotalInquiries    int64    `json:"total_inquiries"`
	TotalWeddingPlans int64    `json:"total_wedding_plans"`
	TotalChatSessions int64    `json:"total_chat_sessions"`
	VendorCategories  []string `json:"vendor_categories"`
}

// VendorAggregate summarizes the vendors matching a market-data query.
type VendorAggregate struct {
	VendorCount     int64   `json:"vendor_count"`
	AverageMinPrice float64 `json:"average_min_price"`
	AverageMaxPrice float64 `json:"average_max_price"`
	AverageRating   float64 `json:"average_rating"`
}

type MarketData struct {
	Category   string `json:"category"`
	Location   string `json:"location"`
	MarketInfo string `json:"market_info"`
	VendorAggregate
}

package dto

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type StatisticsResponse struct {
	TotalUsers         int64   `json:"total_users"`
	TotalProducts      int64   `json:"total_products"`
	TotalConversations int64   `json:"total_conversations"`
	TotalMessages      int64   `json:"total_messages"`
	AdminCount         int64   `json:"admin_count"`
	AvgProductPrice    float64 `json:"avg_product_price"`
	RecentUsers        int64   `json:"recent_users"`
	RecentProducts     int64   `json:"recent_products"`
}

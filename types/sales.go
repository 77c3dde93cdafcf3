package types

// SalesStats 销售统计
type SalesStats struct {
	TotalCount        int     `json:"total_count"`
	TotalAmount       float64 `json:"total_amount"`
	TodayCount        int     `json:"today_count"`
	TodayAmount       float64 `json:"today_amount"`
	AverageOrderValue float64 `json:"average_order_value"` // 平均客单价，无记录时为 0
}

package models

// SalesRecord 销售记录：结算时对购物车的不可变快照，只追加。
// 结算不动库存（加入购物车时已预占），删除记录也不回补
type SalesRecord struct {
	ID          int64      `json:"id"`
	Timestamp   string     `json:"timestamp"` // 结算时间，本地时间格式
	DateKey     string     `json:"date_key"`  // 按日统计键 yyyy-mm-dd
	Lines       []CartLine `json:"lines"`
	TotalAmount float64    `json:"total_amount"`
	TotalItems  float64    `json:"total_items"` // 数量合计（件/公斤混合累加，沿用原统计口径）
	LineCount   int        `json:"line_count"`  // 商品种数
}

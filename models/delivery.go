package models

// 预约配送状态
const (
	DeliveryPending   = "pending"   // 未配送，占用库存
	DeliveryDelivered = "delivered" // 已配送，库存视为消耗
)

// Delivery 预约配送单。pending 状态持有库存预占
// （商品行数量计入 Product.Sold），delivered 不再回补
type Delivery struct {
	ID      int64      `json:"id"`
	Date    string     `json:"date"` // 配送日期 yyyy-mm-dd
	Time    string     `json:"time"` // 配送时段：上午/下午/晚上
	Contact string     `json:"contact"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	Lines   []CartLine `json:"lines"`
	Total   float64    `json:"total"`
	Note    string     `json:"note"`
	Status  string     `json:"status"`
}

package types

// DeliveryRequest 新建/编辑预约配送入参（商品行另传）
type DeliveryRequest struct {
	Date    string `json:"date"`
	Time    string `json:"time"` // 上午/下午/晚上
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// 预约配送排序方式
const (
	DeliverySortByDateTime = "date_time"
	DeliverySortByAddress  = "address"
)

package types

// ProductRequest 新增/修改商品入参
type ProductRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Icon         string  `json:"icon"`
	InitialStock float64 `json:"initial_stock"`
	Unit         string  `json:"unit"` // 为空时取品类默认单位
}

// ProductView 库存表行投影，含派生字段
type ProductView struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Icon         string  `json:"icon"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	InitialStock float64 `json:"initial_stock"`
	Sold         float64 `json:"sold"`
	Remaining    float64 `json:"remaining"`
	Loss         float64 `json:"loss"`
	NetStock     float64 `json:"net_stock"`
	Status       string  `json:"status"` // 充足/偏低/缺货
}

// CategoryStats 品类汇总
type CategoryStats struct {
	Category       string  `json:"category"`
	Kinds          int     `json:"kinds"` // 商品种数
	TotalInitial   float64 `json:"total_initial"`
	TotalSold      float64 `json:"total_sold"`
	TotalRemaining float64 `json:"total_remaining"`
}

// 库存排序字段
const (
	SortByName         = "name"
	SortByPrice        = "price"
	SortByInitialStock = "initialStock"
	SortBySold         = "sold"
	SortByRemaining    = "remaining"
	SortByLoss         = "loss"
	SortByNetStock     = "netStock"
)

package models

// 购物车行类型
const (
	LineRegular  = "regular"  // 原价/会员价商品
	LineDiscount = "discount" // 特价批次商品
)

// CartLine 购物车行。Kind 是判别字段：regular 行走目录定价，
// discount 行锁定特价，OriginalName 仅 discount 行填写
type CartLine struct {
	Kind          string  `json:"kind"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`          // Price: 成交单价
	OriginalPrice float64 `json:"original_price"` // OriginalPrice: 目录原价，冲突回退用
	Quantity      float64 `json:"quantity"`
	Total         float64 `json:"total"` // Total: Price * Quantity
	Unit          string  `json:"unit"`
	OriginalName  string  `json:"original_name,omitempty"` // 特价行对应的原商品名
	DiscountID    int64   `json:"discount_id,omitempty"`   // 特价行对应的打折商品 ID
}

// IsDiscount 是否特价行
func (l *CartLine) IsDiscount() bool {
	return l.Kind == LineDiscount
}

// GroupName 价格冲突分组键：特价行按原商品名归组
func (l *CartLine) GroupName() string {
	if l.Kind == LineDiscount && l.OriginalName != "" {
		return l.OriginalName
	}
	return l.Name
}

package types

// CreateDiscountRequest 创建打折商品入参。
// PricingMethod 为 discount 时用 Discount，fixed 时用 FixedPrice，二者只认其一
type CreateDiscountRequest struct {
	OriginalName  string  `json:"original_name"`
	PricingMethod string  `json:"pricing_method"`
	Discount      float64 `json:"discount"`
	FixedPrice    float64 `json:"fixed_price"`
	Stock         float64 `json:"stock"`
	Reason        string  `json:"reason"` // 为空时默认"临期处理"
	Unit          string  `json:"unit"`   // 为空时沿用原商品单位
}

package models

import "time"

// 打折商品定价方式
const (
	PricingByDiscount = "discount" // 按折扣率
	PricingByFixed    = "fixed"    // 按固定价
)

// DiscountProduct 打折商品：从原商品派生的独立售卖条目，库存独立核算
// （同一商品的临期批次与正常批次分开管理）
type DiscountProduct struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`           // Name: 展示名，形如 "苹果(特价)"
	OriginalName  string    `json:"original_name"`  // OriginalName: 原商品名称
	Category      string    `json:"category"`       // Category: 原商品品类
	Icon          string    `json:"icon"`           // Icon: 沿用原商品图标
	OriginalPrice float64   `json:"original_price"` // OriginalPrice: 创建时的原价快照
	PricingMethod string    `json:"pricing_method"` // PricingMethod: discount / fixed
	Discount      float64   `json:"discount"`       // Discount: 折扣率 (0,1]
	FixedPrice    float64   `json:"fixed_price"`    // FixedPrice: 固定价（仅 fixed 时有效）
	DiscountPrice float64   `json:"discount_price"` // DiscountPrice: 成交单价，恒小于原价
	Stock         float64   `json:"stock"`          // Stock: 特价批次库存，独立于 Product.Sold
	Unit          string    `json:"unit"`
	Reason        string    `json:"reason"` // Reason: 打折原因，如临期处理
	CreatedAt     time.Time `json:"created_at"`
	IsActive      bool      `json:"is_active"` // IsActive: 库存售罄自动失效
}

// DiscountSuffix 特价商品名称后缀
const DiscountSuffix = "(特价)"

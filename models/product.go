package models

// Product 商品条目，按品类归属于目录
type Product struct {
	Name         string  `json:"name"`          // Name: 商品名称，品类内唯一
	Price        float64 `json:"price"`         // Price: 单价（元）
	Icon         string  `json:"icon"`          // Icon: 展示图标
	InitialStock float64 `json:"initial_stock"` // InitialStock: 原始库存
	Sold         float64 `json:"sold"`          // Sold: 已销售量（含购物车与未配送预约的预占）
	Category     string  `json:"category"`      // Category: 所属品类
	Unit         string  `json:"unit"`          // Unit: 计量单位（公斤/瓶/袋…）
	Loss         float64 `json:"loss"`          // Loss: 损耗量
}

// Remaining 剩余库存 = 原始库存 - 已销售
func (p *Product) Remaining() float64 {
	return p.InitialStock - p.Sold
}

// NetStock 净库存 = 剩余库存 - 损耗量，不为负
func (p *Product) NetStock() float64 {
	net := p.Remaining() - p.Loss
	if net < 0 {
		return 0
	}
	return net
}

// 库存状态标签
const (
	StockAmple = "充足"
	StockLow   = "偏低"
	StockOut   = "缺货"
)

// StockStatus 按净库存给出状态标签
func (p *Product) StockStatus() string {
	net := p.NetStock()
	switch {
	case net > 10:
		return StockAmple
	case net > 0:
		return StockLow
	default:
		return StockOut
	}
}

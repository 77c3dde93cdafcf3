package models

import "time"

// Address 会员收货地址
type Address struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Member 会员档案，支持多地址
type Member struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"` // Phone: 注册手机号，全局唯一
	Addresses           []Address `json:"addresses"`
	DefaultAddressIndex int       `json:"default_address_index"` // -1 表示无默认地址
	JoinDate            string    `json:"join_date"`             // 入会日期 yyyy-mm-dd
	Discount            float64   `json:"discount"`              // Discount: 默认会员折扣，如 0.9
	IsActive            bool      `json:"is_active"`
}

// DefaultAddress 当前默认地址，无则返回 nil
func (m *Member) DefaultAddress() *Address {
	if m.DefaultAddressIndex < 0 || m.DefaultAddressIndex >= len(m.Addresses) {
		return nil
	}
	return &m.Addresses[m.DefaultAddressIndex]
}

// MemberProductPrice 单品会员价快照，按商品名称索引；
// 原商品调价后需重算 MemberPrice
type MemberProductPrice struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Icon          string  `json:"icon"`
	OriginalPrice float64 `json:"original_price"`
	Discount      float64 `json:"discount"`
	MemberPrice   float64 `json:"member_price"` // MemberPrice = OriginalPrice * Discount
}

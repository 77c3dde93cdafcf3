package dao

import "sync"

// Store 全量状态树：目录、特价、会员、购物车、预约、销售记录。
// 显式注入而非包级单例，便于测试隔离。
// mu 串行化所有变更操作：service 层公开方法加锁，
// dao 访问器与定价器默认调用方已持锁。
type Store struct {
	mu sync.Mutex

	Catalog    *Catalog
	Discounts  *Discounts
	Members    *Members
	Cart       *Cart
	Deliveries *Deliveries
	Sales      *Sales
}

func NewStore() *Store {
	return &Store{
		Catalog:    NewCatalog(),
		Discounts:  NewDiscounts(),
		Members:    NewMembers(),
		Cart:       NewCart(),
		Deliveries: NewDeliveries(),
		Sales:      NewSales(),
	}
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

package service

import (
	"path/filepath"
	"testing"

	"Minimart/dao"
	"Minimart/pkg/storage"
)

// 测试夹具：种子目录 + 临时文件存储，整套服务共用一个 Store
type fixture struct {
	store    *dao.Store
	events   *Publisher
	catalog  *CatalogService
	discount *DiscountService
	member   *MemberService
	cart     *CartService
	delivery *DeliveryService
	sales    *SalesService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := dao.NewStore()
	store.Catalog.Seed()
	gw := storage.NewLocalStore(filepath.Join(t.TempDir(), "minimart.json"))
	events := NewPublisher(store, gw)
	pricing := &PricingResolver{Store: store}

	return &fixture{
		store:    store,
		events:   events,
		catalog:  &CatalogService{Store: store, Events: events},
		discount: &DiscountService{Store: store, Events: events},
		member:   &MemberService{Store: store, Events: events},
		cart:     &CartService{Store: store, Pricing: pricing, Events: events},
		delivery: &DeliveryService{Store: store, Events: events},
		sales:    &SalesService{Store: store, Events: events},
	}
}

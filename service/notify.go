package service

import (
	"Minimart/dao"
	"Minimart/pkg/log"
	"Minimart/pkg/storage"
	"Minimart/types"

	"go.uber.org/zap"
)

// Publisher 变更提交器：每次变更操作结束时持久化受影响的命名空间，
// 并把变更集推给订阅方（展示层按主题局部刷新，取代全局 refreshAll）。
// 存储失败只告警一次，不阻塞任何操作：会话内以内存态为准
type Publisher struct {
	store   *dao.Store
	gateway storage.Gateway
	subs    []func(types.ChangeSet)
	warned  bool
}

func NewPublisher(store *dao.Store, gateway storage.Gateway) *Publisher {
	return &Publisher{store: store, gateway: gateway}
}

// Subscribe 注册变更订阅。回调在变更操作的调用栈内同步执行，
// 此时存储变更已全部落定，可安全读取
func (p *Publisher) Subscribe(fn func(types.ChangeSet)) {
	p.subs = append(p.subs, fn)
}

// Commit 持久化主题对应的命名空间并广播变更集
func (p *Publisher) Commit(topics ...types.Topic) {
	for _, t := range topics {
		p.persist(t)
	}
	cs := types.ChangeSet{Topics: topics}
	for _, fn := range p.subs {
		fn(cs)
	}
}

func (p *Publisher) persist(t types.Topic) {
	switch t {
	case types.TopicCatalog:
		p.save(storage.NsCatalog, p.store.Catalog.Snapshot())
	case types.TopicDiscounts:
		p.save(storage.NsDiscounts, p.store.Discounts.All())
	case types.TopicMembers:
		p.save(storage.NsMembers, p.store.Members.All())
		p.save(storage.NsMemberProducts, p.store.Members.Prices())
	case types.TopicSession:
		p.save(storage.NsCurrentMember, p.store.Members.Current())
	case types.TopicDeliveries:
		p.save(storage.NsDeliveries, p.store.Deliveries.All())
	case types.TopicSales:
		p.save(storage.NsSales, p.store.Sales.All())
	case types.TopicCart:
		// 购物车不持久化：关页即废
	}
}

func (p *Publisher) save(ns string, v any) {
	if err := p.gateway.Save(ns, v); err != nil {
		if !p.warned {
			p.warned = true
			log.L.Warn("数据无法保存，本次会话仅保留在内存", zap.String("namespace", ns), zap.Error(err))
		}
	}
}

// SaveAll 全量落盘
func (p *Publisher) SaveAll() {
	p.persist(types.TopicCatalog)
	p.persist(types.TopicDiscounts)
	p.persist(types.TopicMembers)
	p.persist(types.TopicSession)
	p.persist(types.TopicDeliveries)
	p.persist(types.TopicSales)
}

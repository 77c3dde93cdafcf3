package app

import (
	"Minimart/config"
	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/storage"
	"Minimart/service"
	"Minimart/types"

	"go.uber.org/zap"
)

// App 内嵌入口：聚合全部服务，生命周期从 LoadAll 开始
type App struct {
	Store   *dao.Store
	Gateway storage.Gateway
	Events  *service.Publisher

	Catalog  service.ICatalogService
	Discount service.IDiscountService
	Member   service.IMemberService
	Cart     service.ICartService
	Delivery service.IDeliveryService
	Sales    service.ISalesService
}

// ProvideGateway 按配置路径建本地快照存储
func ProvideGateway(st *config.Storage) storage.Gateway {
	return storage.NewLocalStore(st.Path)
}

// Subscribe 注册变更订阅，展示层按主题局部刷新
func (a *App) Subscribe(fn func(types.ChangeSet)) {
	a.Events.Subscribe(fn)
}

// LoadAll 启动恢复。各命名空间独立回退：单个命名空间损坏
// 只影响自己，商品目录用种子数据兜底，其余回退为空
func (a *App) LoadAll() {
	a.Store.Lock()
	defer a.Store.Unlock()

	var catalog map[string]dao.CategoryList
	if ok, err := a.Gateway.Load(storage.NsCatalog, &catalog); ok && err == nil {
		a.Store.Catalog.Restore(catalog)
	} else {
		if err != nil {
			log.L.Warn("商品数据损坏，使用种子数据", zap.Error(err))
		}
		a.Store.Catalog.Seed()
	}

	var discounts []*models.DiscountProduct
	if ok, err := a.Gateway.Load(storage.NsDiscounts, &discounts); ok && err == nil {
		a.Store.Discounts.Restore(discounts)
	} else if err != nil {
		log.L.Warn("特价数据损坏，已重置", zap.Error(err))
	}

	var members []*models.Member
	if ok, err := a.Gateway.Load(storage.NsMembers, &members); !ok || err != nil {
		members = nil
		if err != nil {
			log.L.Warn("会员数据损坏，已重置", zap.Error(err))
		}
	}
	var prices map[string]*models.MemberProductPrice
	if ok, err := a.Gateway.Load(storage.NsMemberProducts, &prices); !ok || err != nil {
		prices = nil
		if err != nil {
			log.L.Warn("会员价数据损坏，已重置", zap.Error(err))
		}
	}
	var current *models.Member
	if ok, err := a.Gateway.Load(storage.NsCurrentMember, &current); !ok || err != nil {
		current = nil
	}
	a.Store.Members.Restore(members, prices, current)

	var deliveries []*models.Delivery
	if ok, err := a.Gateway.Load(storage.NsDeliveries, &deliveries); ok && err == nil {
		a.Store.Deliveries.Restore(deliveries)
	} else if err != nil {
		log.L.Warn("预约数据损坏，已重置", zap.Error(err))
	}

	var sales []*models.SalesRecord
	if ok, err := a.Gateway.Load(storage.NsSales, &sales); ok && err == nil {
		a.Store.Sales.Restore(sales)
	} else if err != nil {
		log.L.Warn("销售数据损坏，已重置", zap.Error(err))
	}
}

// SaveAll 全量落盘
func (a *App) SaveAll() {
	a.Store.Lock()
	defer a.Store.Unlock()
	a.Events.SaveAll()
}

// VerifyMember 会员验证并按新会员身份重算购物车
func (a *App) VerifyMember(nameOrPhone string) (*models.Member, error) {
	m, err := a.Member.Verify(nameOrPhone)
	if err != nil {
		return nil, err
	}
	a.Cart.Reprice()
	return m, nil
}

// ClearMember 退出会员并恢复购物车原价
func (a *App) ClearMember() {
	a.Member.ClearCurrent()
	a.Cart.Reprice()
}

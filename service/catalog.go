package service

import (
	"sort"
	"strings"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/response"
	"Minimart/types"

	"go.uber.org/zap"
)

type CatalogService struct {
	Store  *dao.Store
	Events *Publisher
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	AddProduct(category string, req *types.ProductRequest) (*models.Product, error)
	UpdateProduct(category, name string, req *types.ProductRequest) error
	Restock(category, name string, amount float64) error
	RecordLoss(category, name string, amount float64) error
	RecordReturn(category, name string, amount float64) error
	DeleteProduct(category, name string) error
	ClearSales(category string, names []string) int

	Find(name string) *models.Product
	ListViews(category string) []types.ProductView
	Stats(category string) types.CategoryStats
	SearchProducts(keyword string) []types.ProductView
	SortInventory(category, field string, asc bool) error
}

func (s *CatalogService) AddProduct(category string, req *types.ProductRequest) (*models.Product, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	if err := validateProductRequest(category, req); err != nil {
		return nil, err
	}
	if s.Store.Catalog.Get(category, req.Name) != nil {
		return nil, response.Conflictf("商品名称已存在")
	}

	unit := req.Unit
	if unit == "" {
		unit = models.DefaultUnit(category)
	}
	product := &models.Product{
		Name:         req.Name,
		Price:        req.Price,
		Icon:         req.Icon,
		InitialStock: req.InitialStock,
		Category:     category,
		Unit:         unit,
	}
	s.Store.Catalog.Append(product)

	log.L.Info("商品添加成功", zap.String("category", category), zap.String("name", product.Name))
	s.Events.Commit(types.TopicCatalog)
	return product, nil
}

// UpdateProduct 修改商品，允许改名。改名或调价会级联更新单品会员价快照
func (s *CatalogService) UpdateProduct(category, name string, req *types.ProductRequest) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if err := validateProductRequest(category, req); err != nil {
		return err
	}
	product := s.Store.Catalog.Get(category, name)
	if product == nil {
		return response.NotFoundf("商品不存在")
	}
	if req.Name != name && s.Store.Catalog.Get(category, req.Name) != nil {
		return response.Conflictf("商品名称已存在")
	}

	oldPrice := product.Price
	product.Name = req.Name
	product.Price = req.Price
	product.InitialStock = req.InitialStock
	product.Icon = req.Icon
	if req.Unit != "" {
		product.Unit = req.Unit
	}

	touchedPrices := false
	if req.Name != name && s.Store.Members.Price(name) != nil {
		moveMemberPrice(s.Store, name, req.Name)
		touchedPrices = true
	} else if oldPrice != req.Price && recomputeMemberPrice(s.Store, req.Name) != nil {
		touchedPrices = true
	}

	if touchedPrices {
		s.Events.Commit(types.TopicCatalog, types.TopicMembers)
	} else {
		s.Events.Commit(types.TopicCatalog)
	}
	return nil
}

// Restock 进货，只增加原始库存
func (s *CatalogService) Restock(category, name string, amount float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if amount <= 0 {
		return response.Validationf("进货数量必须大于0")
	}
	product := s.Store.Catalog.Get(category, name)
	if product == nil {
		return response.NotFoundf("商品不存在")
	}

	product.InitialStock += amount
	log.L.Info("进货成功", zap.String("name", name), zap.Float64("amount", amount))
	s.Events.Commit(types.TopicCatalog)
	return nil
}

// RecordLoss 设置损耗量，上限为当前剩余库存
func (s *CatalogService) RecordLoss(category, name string, amount float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	product := s.Store.Catalog.Get(category, name)
	if product == nil {
		return response.NotFoundf("商品不存在")
	}
	if amount < 0 {
		return response.Validationf("损耗量不能为负数")
	}
	if amount > product.Remaining() {
		return response.Validationf("损耗量不能超过剩余库存 %.2f", product.Remaining())
	}

	product.Loss = amount
	s.Events.Commit(types.TopicCatalog)
	return nil
}

// RecordReturn 顾客退货：减少已销售量，与进货无关
func (s *CatalogService) RecordReturn(category, name string, amount float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if amount <= 0 {
		return response.Validationf("请完整填写退货信息")
	}
	product := s.Store.Catalog.Get(category, name)
	if product == nil {
		return response.NotFoundf("商品不存在")
	}
	if amount > product.Sold {
		return response.Validationf("退货失败！已销售量只有 %.2f，不能退 %.2f", product.Sold, amount)
	}

	product.Sold -= amount
	log.L.Info("顾客退货成功", zap.String("name", name), zap.Float64("amount", amount))
	s.Events.Commit(types.TopicCatalog)
	return nil
}

// DeleteProduct 从目录删除商品。历史销售记录中的引用保留为时点快照
func (s *CatalogService) DeleteProduct(category, name string) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if !s.Store.Catalog.Delete(category, name) {
		return response.NotFoundf("商品不存在")
	}
	s.Events.Commit(types.TopicCatalog)
	return nil
}

// ClearSales 批量清零销售与损耗，返回处理条数
func (s *CatalogService) ClearSales(category string, names []string) int {
	s.Store.Lock()
	defer s.Store.Unlock()

	n := 0
	for _, name := range names {
		if product := s.Store.Catalog.Get(category, name); product != nil {
			product.Sold = 0
			product.Loss = 0
			n++
		}
	}
	if n > 0 {
		s.Events.Commit(types.TopicCatalog)
	}
	return n
}

func (s *CatalogService) Find(name string) *models.Product {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Catalog.Find(name)
}

func (s *CatalogService) ListViews(category string) []types.ProductView {
	s.Store.Lock()
	defer s.Store.Unlock()

	list := s.Store.Catalog.List(category)
	out := make([]types.ProductView, 0, len(list))
	for _, p := range list {
		out = append(out, viewOf(p))
	}
	return out
}

func (s *CatalogService) Stats(category string) types.CategoryStats {
	s.Store.Lock()
	defer s.Store.Unlock()

	st := types.CategoryStats{Category: category}
	for _, p := range s.Store.Catalog.List(category) {
		st.Kinds++
		st.TotalInitial += p.InitialStock
		st.TotalSold += p.Sold
		st.TotalRemaining += p.Remaining()
	}
	return st
}

func (s *CatalogService) SearchProducts(keyword string) []types.ProductView {
	s.Store.Lock()
	defer s.Store.Unlock()

	lower := strings.ToLower(keyword)
	var out []types.ProductView
	for _, p := range s.Store.Catalog.All() {
		if keyword == "" || strings.Contains(strings.ToLower(p.Name), lower) {
			out = append(out, viewOf(p))
		}
	}
	return out
}

// SortInventory 品类内库存排序，稳定排序
func (s *CatalogService) SortInventory(category, field string, asc bool) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if !models.ValidCategory(category) {
		return response.Validationf("未知品类")
	}

	list := s.Store.Catalog.List(category)
	sort.SliceStable(list, func(i, j int) bool {
		less := compareProducts(list[i], list[j], field)
		if asc {
			return less
		}
		return compareProducts(list[j], list[i], field)
	})
	s.Store.Catalog.SetList(category, list)
	s.Events.Commit(types.TopicCatalog)
	return nil
}

func compareProducts(a, b *models.Product, field string) bool {
	switch field {
	case types.SortByPrice:
		return a.Price < b.Price
	case types.SortByInitialStock:
		return a.InitialStock < b.InitialStock
	case types.SortBySold:
		return a.Sold < b.Sold
	case types.SortByRemaining:
		return a.Remaining() < b.Remaining()
	case types.SortByLoss:
		return a.Loss < b.Loss
	case types.SortByNetStock:
		return a.NetStock() < b.NetStock()
	default:
		return a.Name < b.Name
	}
}

func viewOf(p *models.Product) types.ProductView {
	return types.ProductView{
		Name:         p.Name,
		Price:        p.Price,
		Icon:         p.Icon,
		Category:     p.Category,
		Unit:         p.Unit,
		InitialStock: p.InitialStock,
		Sold:         p.Sold,
		Remaining:    p.Remaining(),
		Loss:         p.Loss,
		NetStock:     p.NetStock(),
		Status:       p.StockStatus(),
	}
}

func validateProductRequest(category string, req *types.ProductRequest) error {
	if !models.ValidCategory(category) {
		return response.Validationf("未知品类")
	}
	if req == nil || strings.TrimSpace(req.Name) == "" || req.Icon == "" {
		return response.Validationf("请填写完整且有效的商品信息")
	}
	if req.Price < 0 || req.InitialStock < 0 {
		return response.Validationf("请填写完整且有效的商品信息")
	}
	return nil
}

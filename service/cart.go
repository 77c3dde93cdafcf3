package service

import (
	"strings"
	"time"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/response"
	"Minimart/pkg/snowflake"
	"Minimart/types"

	"go.uber.org/zap"
)

// CartService 进行中的销售。库存在入车时预占（Sold += 数量），
// 删行时对称释放，结算不再动库存。搁置的购物车会一直占着库存，
// 这是有意保留的行为
type CartService struct {
	Store   *dao.Store
	Pricing *PricingResolver
	Events  *Publisher
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Add(name string, quantity float64) error
	AddProduct(name string, quantity float64) error
	AddDiscount(id int64, quantity float64) error
	RemoveLine(index int) error
	Reprice()
	Checkout() (*models.SalesRecord, error)
	ConfirmForDelivery() ([]models.CartLine, error)
	Lines() []models.CartLine
	Total() float64
}

// Add 按名称入车：带"(特价)"后缀的走特价通道，其余走原价通道
func (s *CartService) Add(name string, quantity float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if strings.Contains(name, models.DiscountSuffix) {
		dp := s.Store.Discounts.ActiveByName(name)
		if dp == nil {
			return response.NotFoundf("打折商品不存在")
		}
		return s.addDiscount(dp.ID, quantity)
	}
	return s.addProduct(name, quantity)
}

func (s *CartService) AddProduct(name string, quantity float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.addProduct(name, quantity)
}

func (s *CartService) AddDiscount(id int64, quantity float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.addDiscount(id, quantity)
}

// 调用方持锁。入车即预占：Sold 先加，定价后追加行，再跑调价
func (s *CartService) addProduct(name string, quantity float64) error {
	if quantity <= 0 {
		return response.Validationf("请输入有效数量")
	}
	product := s.Store.Catalog.Find(name)
	if product == nil {
		return response.NotFoundf("商品未找到")
	}
	if quantity > product.Remaining() {
		return response.InsufficientStockf("库存不足！当前剩余 %.2f%s", product.Remaining(), product.Unit)
	}

	price := s.Pricing.RegularUnitPrice(name, product.Price)
	product.Sold += quantity

	s.Store.Cart.Append(models.CartLine{
		Kind:          models.LineRegular,
		Name:          product.Name,
		Category:      product.Category,
		Price:         price,
		OriginalPrice: product.Price,
		Quantity:      quantity,
		Total:         price * quantity,
		Unit:          product.Unit,
	})
	s.Pricing.ReconcileCart()

	s.Events.Commit(types.TopicCart, types.TopicCatalog)
	return nil
}

// 调用方持锁。特价行锁定特价，不参与会员定价；
// 入车后调价会把同商品的会员价行顶回原价
func (s *CartService) addDiscount(id int64, quantity float64) error {
	if quantity <= 0 {
		return response.Validationf("请输入有效数量")
	}
	dp, err := sellDiscount(s.Store, id, quantity)
	if err != nil {
		return err
	}

	s.Store.Cart.Append(models.CartLine{
		Kind:          models.LineDiscount,
		Name:          dp.Name,
		Category:      dp.Category,
		Price:         dp.DiscountPrice,
		OriginalPrice: dp.OriginalPrice,
		Quantity:      quantity,
		Total:         dp.DiscountPrice * quantity,
		Unit:          dp.Unit,
		OriginalName:  dp.OriginalName,
		DiscountID:    dp.ID,
	})
	s.Pricing.ReconcileCart()

	s.Events.Commit(types.TopicCart, types.TopicDiscounts)
	return nil
}

// RemoveLine 删行并对称释放预占：原价行回补 Sold，
// 特价行回补特价库存并重新上架
func (s *CartService) RemoveLine(index int) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	line, ok := s.Store.Cart.RemoveAt(index)
	if !ok {
		return response.Validationf("无效的索引")
	}

	touched := types.TopicCatalog
	if line.IsDiscount() {
		restoreDiscount(s.Store, line.DiscountID, line.Quantity)
		touched = types.TopicDiscounts
	} else {
		if product := s.Store.Catalog.Get(line.Category, line.Name); product != nil {
			product.Sold -= line.Quantity
		}
	}
	s.Pricing.ReconcileCart()

	s.Events.Commit(types.TopicCart, touched)
	return nil
}

// Reprice 重跑价格仲裁；会员验证/退出后由协调层调用
func (s *CartService) Reprice() {
	s.Store.Lock()
	defer s.Store.Unlock()

	s.Pricing.ReconcileCart()
	s.Events.Commit(types.TopicCart)
}

// Checkout 结算：快照入台账并清空购物车。库存入车时已扣，这里不再动
func (s *CartService) Checkout() (*models.SalesRecord, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	lines := s.Store.Cart.Lines()
	if len(lines) == 0 {
		return nil, response.ErrEmptyCart
	}

	now := time.Now()
	record := &models.SalesRecord{
		ID:        snowflake.GenID(),
		Timestamp: now.Format("2006/01/02 15:04:05"),
		DateKey:   now.Format("2006-01-02"),
		Lines:     append([]models.CartLine(nil), lines...),
		LineCount: len(lines),
	}
	for _, l := range lines {
		record.TotalAmount += l.Total
		record.TotalItems += l.Quantity
	}

	s.Store.Sales.Append(record)
	s.Store.Cart.Clear()

	log.L.Info("结算完成",
		zap.Int("lines", record.LineCount), zap.Float64("amount", record.TotalAmount))
	s.Events.Commit(types.TopicSales, types.TopicCart)
	return record, nil
}

// ConfirmForDelivery 选品转预约：撤销购物车对目录库存的预占，
// 把商品行暂存给预约流程。预约保存时再整体扣一次，净效果恰好一份预占
func (s *CartService) ConfirmForDelivery() ([]models.CartLine, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	if s.Store.Cart.Len() == 0 {
		return nil, response.Validationf("请先选择商品")
	}

	for _, line := range s.Store.Cart.Lines() {
		// 与原实现一致：按目录名找，特价行找不到自然跳过
		if product := s.Store.Catalog.Get(line.Category, line.Name); product != nil {
			product.Sold -= line.Quantity
		}
	}
	staged := s.Store.Cart.Take()
	s.Store.Deliveries.SetStaged(staged)

	s.Events.Commit(types.TopicCart, types.TopicCatalog)
	return staged, nil
}

func (s *CartService) Lines() []models.CartLine {
	s.Store.Lock()
	defer s.Store.Unlock()
	return append([]models.CartLine(nil), s.Store.Cart.Lines()...)
}

func (s *CartService) Total() float64 {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Cart.Total()
}

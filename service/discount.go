package service

import (
	"strings"
	"time"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/response"
	"Minimart/pkg/snowflake"
	"Minimart/pkg/utils"
	"Minimart/types"

	"go.uber.org/zap"
)

// 默认打折原因
const defaultDiscountReason = "临期处理"

type DiscountService struct {
	Store  *dao.Store
	Events *Publisher
}

var _ IDiscountService = (*DiscountService)(nil)

type IDiscountService interface {
	Create(req *types.CreateDiscountRequest) (*models.DiscountProduct, error)
	Sell(id int64, quantity float64) error
	Restore(id int64, quantity float64) error
	Remove(id int64) error
	Active() []*models.DiscountProduct
	FindActiveByOriginalName(name string) *models.DiscountProduct
	FindActiveByName(name string) *models.DiscountProduct
	Search(keyword string) []*models.DiscountProduct
}

// Create 创建打折商品：独立售卖条目，库存与正常批次分开核算。
// 同一原商品同时只允许一个生效中的特价
func (s *DiscountService) Create(req *types.CreateDiscountRequest) (*models.DiscountProduct, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	if req == nil || req.OriginalName == "" || req.Stock <= 0 {
		return nil, response.Validationf("商品名称和库存不能为空")
	}
	switch req.PricingMethod {
	case models.PricingByDiscount:
		if req.Discount <= 0 || req.Discount > 1 {
			return nil, response.Validationf("折扣率范围0.01-1.0")
		}
	case models.PricingByFixed:
		if req.FixedPrice <= 0 {
			return nil, response.Validationf("固定价格必须大于0")
		}
	default:
		return nil, response.Validationf("无效的定价方式")
	}

	product := s.Store.Catalog.Find(req.OriginalName)
	if product == nil {
		return nil, response.NotFoundf("原商品不存在")
	}
	if s.Store.Discounts.ActiveByOriginalName(req.OriginalName) != nil {
		return nil, response.Conflictf("该商品已存在打折信息")
	}

	var discountPrice, ratio float64
	if req.PricingMethod == models.PricingByDiscount {
		discountPrice = utils.Round2(product.Price * req.Discount)
		ratio = req.Discount
	} else {
		discountPrice = req.FixedPrice
		if discountPrice >= product.Price {
			return nil, response.Validationf("打折价格不能高于或等于原价")
		}
		ratio = utils.Round2(discountPrice / product.Price)
	}

	unit := req.Unit
	if unit == "" {
		unit = product.Unit
	}
	if unit == "" {
		unit = models.DefaultUnit(product.Category)
	}
	reason := req.Reason
	if reason == "" {
		reason = defaultDiscountReason
	}

	dp := &models.DiscountProduct{
		ID:            snowflake.GenID(),
		Name:          product.Name + models.DiscountSuffix,
		OriginalName:  product.Name,
		Category:      product.Category,
		Icon:          product.Icon,
		OriginalPrice: product.Price,
		PricingMethod: req.PricingMethod,
		Discount:      ratio,
		DiscountPrice: discountPrice,
		Stock:         req.Stock,
		Unit:          unit,
		Reason:        reason,
		CreatedAt:     time.Now(),
		IsActive:      true,
	}
	if req.PricingMethod == models.PricingByFixed {
		dp.FixedPrice = req.FixedPrice
	}

	s.Store.Discounts.Append(dp)
	log.L.Info("打折商品创建成功",
		zap.String("name", dp.Name), zap.Float64("discount_price", dp.DiscountPrice))
	s.Events.Commit(types.TopicDiscounts)
	return dp, nil
}

// Sell 扣减特价库存，售罄自动失效
func (s *DiscountService) Sell(id int64, quantity float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if _, err := sellDiscount(s.Store, id, quantity); err != nil {
		return err
	}
	s.Events.Commit(types.TopicDiscounts)
	return nil
}

// Restore 回补特价库存并重新上架
func (s *DiscountService) Restore(id int64, quantity float64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if s.Store.Discounts.ByID(id) == nil {
		return response.NotFoundf("打折商品不存在")
	}
	restoreDiscount(s.Store, id, quantity)
	s.Events.Commit(types.TopicDiscounts)
	return nil
}

func (s *DiscountService) Remove(id int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if !s.Store.Discounts.Remove(id) {
		return response.NotFoundf("打折商品不存在")
	}
	s.Events.Commit(types.TopicDiscounts)
	return nil
}

func (s *DiscountService) Active() []*models.DiscountProduct {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Discounts.Active()
}

func (s *DiscountService) FindActiveByOriginalName(name string) *models.DiscountProduct {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Discounts.ActiveByOriginalName(name)
}

func (s *DiscountService) FindActiveByName(name string) *models.DiscountProduct {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Discounts.ActiveByName(name)
}

// Search 按特价名/原商品名/打折原因做大小写不敏感子串匹配
func (s *DiscountService) Search(keyword string) []*models.DiscountProduct {
	s.Store.Lock()
	defer s.Store.Unlock()

	active := s.Store.Discounts.Active()
	if keyword == "" {
		return active
	}
	lower := strings.ToLower(keyword)
	var out []*models.DiscountProduct
	for _, dp := range active {
		if strings.Contains(strings.ToLower(dp.Name), lower) ||
			strings.Contains(strings.ToLower(dp.OriginalName), lower) ||
			strings.Contains(strings.ToLower(dp.Reason), lower) {
			out = append(out, dp)
		}
	}
	return out
}

// 调用方持锁
func sellDiscount(store *dao.Store, id int64, quantity float64) (*models.DiscountProduct, error) {
	dp := store.Discounts.ByID(id)
	if dp == nil {
		return nil, response.NotFoundf("打折商品不存在")
	}
	if quantity > dp.Stock {
		return nil, response.InsufficientStockf("打折商品库存不足！当前库存 %.2f%s", dp.Stock, dp.Unit)
	}

	dp.Stock -= quantity
	if dp.Stock <= 0 {
		dp.Stock = 0
		dp.IsActive = false
		log.L.Info("特价商品售罄自动下架", zap.String("name", dp.Name))
	}
	return dp, nil
}

// 调用方持锁。回补特价库存并重新上架（删除购物车特价行）
func restoreDiscount(store *dao.Store, id int64, quantity float64) {
	dp := store.Discounts.ByID(id)
	if dp == nil {
		return
	}
	dp.Stock += quantity
	dp.IsActive = true
}

package service

import (
	"sort"
	"strings"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/response"
	"Minimart/pkg/snowflake"
	"Minimart/types"

	"go.uber.org/zap"
)

// DeliveryService 预约配送。pending 单持有库存预占；
// 传入的商品行来自购物车选品确认（预占已在确认时撤销），
// 保存时统一扣一次，保证恰好一份预占
type DeliveryService struct {
	Store  *dao.Store
	Events *Publisher
}

var _ IDeliveryService = (*DeliveryService)(nil)

type IDeliveryService interface {
	Create(req *types.DeliveryRequest, lines []models.CartLine) (*models.Delivery, error)
	CreateStaged(req *types.DeliveryRequest) (*models.Delivery, error)
	Edit(id int64, req *types.DeliveryRequest, lines []models.CartLine) error
	Delete(id int64) error
	DeleteMany(ids []int64) int
	Clear() int
	ToggleStatus(id int64) error
	SortBy(field string) error
	List() []*models.Delivery
	Staged() []models.CartLine
}

func (s *DeliveryService) Create(req *types.DeliveryRequest, lines []models.CartLine) (*models.Delivery, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.create(req, lines)
}

// CreateStaged 用选品确认暂存的商品行建单
func (s *DeliveryService) CreateStaged(req *types.DeliveryRequest) (*models.Delivery, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	dl, err := s.create(req, s.Store.Deliveries.Staged())
	if err != nil {
		return nil, err
	}
	s.Store.Deliveries.SetStaged(nil)
	return dl, nil
}

// 调用方持锁
func (s *DeliveryService) create(req *types.DeliveryRequest, lines []models.CartLine) (*models.Delivery, error) {
	if err := validateDeliveryRequest(req, lines); err != nil {
		return nil, err
	}

	dl := &models.Delivery{
		ID:      snowflake.GenID(),
		Date:    req.Date,
		Time:    req.Time,
		Contact: req.Contact,
		Phone:   req.Phone,
		Address: req.Address,
		Lines:   append([]models.CartLine(nil), lines...),
		Total:   linesTotal(lines),
		Note:    req.Note,
		Status:  models.DeliveryPending,
	}
	s.Store.Deliveries.Append(dl)
	s.deductStock(dl)

	log.L.Info("预约添加成功", zap.Int64("id", dl.ID), zap.String("date", dl.Date))
	s.Events.Commit(types.TopicDeliveries, types.TopicCatalog)
	return dl, nil
}

// Edit 编辑预约。pending 单先整体回补旧行库存，套用新内容后再整体扣减，
// 三步在同一次持锁内完成且校验前置，不会出现半提交
func (s *DeliveryService) Edit(id int64, req *types.DeliveryRequest, lines []models.CartLine) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	dl := s.Store.Deliveries.ByID(id)
	if dl == nil {
		return response.NotFoundf("订单不存在")
	}
	if dl.Status == models.DeliveryDelivered {
		return response.Validationf("已配送的订单不能修改")
	}
	if err := validateDeliveryRequest(req, lines); err != nil {
		return err
	}

	s.restoreStock(dl)
	dl.Date = req.Date
	dl.Time = req.Time
	dl.Contact = req.Contact
	dl.Phone = req.Phone
	dl.Address = req.Address
	dl.Note = req.Note
	dl.Lines = append([]models.CartLine(nil), lines...)
	dl.Total = linesTotal(lines)
	s.deductStock(dl)

	s.Events.Commit(types.TopicDeliveries, types.TopicCatalog)
	return nil
}

func (s *DeliveryService) Delete(id int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	dl := s.Store.Deliveries.ByID(id)
	if dl == nil {
		return response.NotFoundf("订单不存在")
	}
	s.restoreStock(dl)
	s.Store.Deliveries.Remove(id)

	s.Events.Commit(types.TopicDeliveries, types.TopicCatalog)
	return nil
}

// DeleteMany 批量删除，返回删除条数
func (s *DeliveryService) DeleteMany(ids []int64) int {
	s.Store.Lock()
	defer s.Store.Unlock()

	n := 0
	for _, id := range ids {
		dl := s.Store.Deliveries.ByID(id)
		if dl == nil {
			continue
		}
		s.restoreStock(dl)
		s.Store.Deliveries.Remove(id)
		n++
	}
	if n > 0 {
		s.Events.Commit(types.TopicDeliveries, types.TopicCatalog)
	}
	return n
}

// Clear 清空全部预约，未配送单回补库存
func (s *DeliveryService) Clear() int {
	s.Store.Lock()
	defer s.Store.Unlock()

	items := s.Store.Deliveries.All()
	for _, dl := range items {
		s.restoreStock(dl)
	}
	n := len(items)
	s.Store.Deliveries.SetAll(nil)

	s.Events.Commit(types.TopicDeliveries, types.TopicCatalog)
	return n
}

// ToggleStatus 配送状态双向切换。不动库存：pending 期间的预占
// 在配送完成后视为消耗
func (s *DeliveryService) ToggleStatus(id int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	dl := s.Store.Deliveries.ByID(id)
	if dl == nil {
		return response.NotFoundf("订单不存在")
	}
	if dl.Status == models.DeliveryPending {
		dl.Status = models.DeliveryDelivered
	} else {
		dl.Status = models.DeliveryPending
	}
	s.Events.Commit(types.TopicDeliveries)
	return nil
}

// SortBy 预约排序，稳定升序
func (s *DeliveryService) SortBy(field string) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	items := s.Store.Deliveries.All()
	switch field {
	case types.DeliverySortByDateTime:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Date != items[j].Date {
				return items[i].Date < items[j].Date
			}
			return timeRank(items[i].Time) < timeRank(items[j].Time)
		})
	case types.DeliverySortByAddress:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.Compare(items[i].Address, items[j].Address) < 0
		})
	default:
		return response.Validationf("不支持的排序方式")
	}
	s.Store.Deliveries.SetAll(items)
	s.Events.Commit(types.TopicDeliveries)
	return nil
}

func (s *DeliveryService) List() []*models.Delivery {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Deliveries.All()
}

func (s *DeliveryService) Staged() []models.CartLine {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Deliveries.Staged()
}

// 调用方持锁。仅 pending 单回补；已配送的删除不回补（保留原有不对称语义）
func (s *DeliveryService) restoreStock(dl *models.Delivery) {
	if dl == nil || dl.Status != models.DeliveryPending {
		return
	}
	for _, line := range dl.Lines {
		if product := s.Store.Catalog.Get(line.Category, line.Name); product != nil {
			product.Sold = maxFloat(0, product.Sold-line.Quantity)
		}
	}
}

// 调用方持锁。仅 pending 单扣减；特价行按目录名找不到，自然不参与
func (s *DeliveryService) deductStock(dl *models.Delivery) {
	if dl == nil || dl.Status != models.DeliveryPending {
		return
	}
	for _, line := range dl.Lines {
		if product := s.Store.Catalog.Get(line.Category, line.Name); product != nil {
			product.Sold += line.Quantity
		}
	}
}

// 配送时段排序权重：上午 < 下午 < 晚上
func timeRank(t string) int {
	switch t {
	case "上午":
		return 0
	case "下午":
		return 1
	case "晚上":
		return 2
	default:
		return 3
	}
}

func linesTotal(lines []models.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Total
	}
	return sum
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func validateDeliveryRequest(req *types.DeliveryRequest, lines []models.CartLine) error {
	if req == nil || req.Date == "" || req.Time == "" ||
		strings.TrimSpace(req.Contact) == "" || strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" || len(lines) == 0 {
		return response.Validationf("请填写完整信息并选择商品")
	}
	return nil
}

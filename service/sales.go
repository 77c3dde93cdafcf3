package service

import (
	"sort"
	"time"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/types"

	"go.uber.org/zap"
)

// SalesService 销售台账，只追加不改写
type SalesService struct {
	Store  *dao.Store
	Events *Publisher
}

var _ ISalesService = (*SalesService)(nil)

type ISalesService interface {
	List() []*models.SalesRecord
	DeleteRecords(ids []int64) int
	Stats() *types.SalesStats
}

// List 按生成顺序倒序返回（最新在前）
func (s *SalesService) List() []*models.SalesRecord {
	s.Store.Lock()
	defer s.Store.Unlock()

	records := append([]*models.SalesRecord(nil), s.Store.Sales.All()...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID > records[j].ID
	})
	return records
}

func (s *SalesService) DeleteRecords(ids []int64) int {
	s.Store.Lock()
	defer s.Store.Unlock()

	n := s.Store.Sales.Remove(ids)
	if n > 0 {
		log.L.Info("销售记录已删除", zap.Int("count", n))
		s.Events.Commit(types.TopicSales)
	}
	return n
}

// Stats 汇总今日与累计销售
func (s *SalesService) Stats() *types.SalesStats {
	s.Store.Lock()
	defer s.Store.Unlock()

	today := time.Now().Format("2006-01-02")
	stats := &types.SalesStats{}
	for _, r := range s.Store.Sales.All() {
		stats.TotalAmount += r.TotalAmount
		stats.TotalCount++
		if r.DateKey == today {
			stats.TodayAmount += r.TotalAmount
			stats.TodayCount++
		}
	}
	if stats.TotalCount > 0 {
		stats.AverageOrderValue = stats.TotalAmount / float64(stats.TotalCount)
	}
	return stats
}

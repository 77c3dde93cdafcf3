package dao

import "Minimart/models"

// Sales 销售记录台账，只追加
type Sales struct {
	records []*models.SalesRecord
}

func NewSales() *Sales {
	return &Sales{}
}

func (s *Sales) All() []*models.SalesRecord {
	return s.records
}

func (s *Sales) Append(r *models.SalesRecord) {
	s.records = append(s.records, r)
}

func (s *Sales) Remove(ids []int64) int {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if _, hit := set[r.ID]; hit {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

func (s *Sales) Restore(records []*models.SalesRecord) {
	s.records = records
}

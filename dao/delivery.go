package dao

import "Minimart/models"

// Deliveries 预约配送单列表，外加待建单的暂存商品行
// （销售区选品确认后、预约保存前的中转，对应原 tempDeliveryProducts）
type Deliveries struct {
	items  []*models.Delivery
	staged []models.CartLine
}

func NewDeliveries() *Deliveries {
	return &Deliveries{}
}

func (d *Deliveries) ByID(id int64) *models.Delivery {
	for _, dl := range d.items {
		if dl.ID == id {
			return dl
		}
	}
	return nil
}

func (d *Deliveries) All() []*models.Delivery {
	return d.items
}

func (d *Deliveries) Append(dl *models.Delivery) {
	d.items = append(d.items, dl)
}

func (d *Deliveries) Remove(id int64) bool {
	for i, dl := range d.items {
		if dl.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetAll 整体替换（排序/批量删除用）
func (d *Deliveries) SetAll(items []*models.Delivery) {
	d.items = items
}

func (d *Deliveries) Staged() []models.CartLine {
	return d.staged
}

func (d *Deliveries) SetStaged(lines []models.CartLine) {
	d.staged = lines
}

func (d *Deliveries) Restore(items []*models.Delivery) {
	d.items = items
}

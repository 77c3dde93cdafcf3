package dao

import "Minimart/models"

// Discounts 打折商品注册表
type Discounts struct {
	items []*models.DiscountProduct
}

func NewDiscounts() *Discounts {
	return &Discounts{}
}

func (d *Discounts) ByID(id int64) *models.DiscountProduct {
	for _, p := range d.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActiveByOriginalName 按原商品名查找生效中的特价
func (d *Discounts) ActiveByOriginalName(name string) *models.DiscountProduct {
	for _, p := range d.items {
		if p.OriginalName == name && p.IsActive {
			return p
		}
	}
	return nil
}

// ActiveByName 按特价名（含后缀）查找生效中的特价
func (d *Discounts) ActiveByName(name string) *models.DiscountProduct {
	for _, p := range d.items {
		if p.Name == name && p.IsActive {
			return p
		}
	}
	return nil
}

// Active 全部生效中的特价商品
func (d *Discounts) Active() []*models.DiscountProduct {
	var out []*models.DiscountProduct
	for _, p := range d.items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (d *Discounts) All() []*models.DiscountProduct {
	return d.items
}

func (d *Discounts) Append(p *models.DiscountProduct) {
	d.items = append(d.items, p)
}

func (d *Discounts) Remove(id int64) bool {
	for i, p := range d.items {
		if p.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Discounts) Restore(items []*models.DiscountProduct) {
	d.items = items
}

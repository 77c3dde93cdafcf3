package dao

import "Minimart/models"

// CategoryList 单品类商品列表，持久化形态与原存储键保持一致
type CategoryList struct {
	List []*models.Product `json:"list"`
}

// Catalog 商品目录：品类 -> 商品列表
type Catalog struct {
	lists map[string][]*models.Product
}

func NewCatalog() *Catalog {
	c := &Catalog{lists: make(map[string][]*models.Product)}
	for _, cat := range models.Categories {
		c.lists[cat] = nil
	}
	return c
}

// Seed 内置初始目录，存储为空或损坏时兜底
func (c *Catalog) Seed() {
	seed := map[string][]*models.Product{
		models.CategoryFruit: {
			{Name: "苹果", Price: 11.0, Icon: "🍎", InitialStock: 50, Category: models.CategoryFruit, Unit: "公斤"},
			{Name: "香蕉", Price: 6.4, Icon: "🍌", InitialStock: 30, Category: models.CategoryFruit, Unit: "公斤"},
		},
		models.CategoryVegetable: {
			{Name: "西红柿", Price: 8.0, Icon: "🍅", InitialStock: 60, Category: models.CategoryVegetable, Unit: "公斤"},
		},
		models.CategorySnack: {
			{Name: "薯片", Price: 8.0, Icon: "🍟", InitialStock: 100, Category: models.CategorySnack, Unit: "袋"},
		},
		models.CategoryCigarette: {
			{Name: "中华", Price: 65.0, Icon: "🚬", InitialStock: 30, Category: models.CategoryCigarette, Unit: "包"},
		},
		models.CategoryLiquor: {
			{Name: "茅台", Price: 1499.0, Icon: "🥃", InitialStock: 10, Category: models.CategoryLiquor, Unit: "瓶"},
		},
		models.CategoryBeverage: {
			{Name: "可乐", Price: 3.5, Icon: "🥤", InitialStock: 200, Category: models.CategoryBeverage, Unit: "瓶"},
			{Name: "橙汁", Price: 5.0, Icon: "🧃", InitialStock: 150, Category: models.CategoryBeverage, Unit: "瓶"},
			{Name: "牛奶", Price: 4.5, Icon: "🥛", InitialStock: 180, Category: models.CategoryBeverage, Unit: "盒"},
		},
		models.CategoryFrozen: {
			{Name: "饺子", Price: 20.0, Icon: "🥟", InitialStock: 50, Category: models.CategoryFrozen, Unit: "袋"},
			{Name: "冰淇淋", Price: 15.0, Icon: "🍦", InitialStock: 100, Category: models.CategoryFrozen, Unit: "盒"},
		},
		models.CategoryKitchen: {
			{Name: "刀具", Price: 50.0, Icon: "🔪", InitialStock: 20, Category: models.CategoryKitchen, Unit: "把"},
			{Name: "锅", Price: 100.0, Icon: "🍳", InitialStock: 15, Category: models.CategoryKitchen, Unit: "个"},
		},
		models.CategoryLiving: {
			{Name: "洗发水", Price: 30.0, Icon: "🧴", InitialStock: 50, Category: models.CategoryLiving, Unit: "瓶"},
			{Name: "纸巾", Price: 10.0, Icon: "🧻", InitialStock: 200, Category: models.CategoryLiving, Unit: "提"},
		},
	}
	c.lists = make(map[string][]*models.Product)
	for _, cat := range models.Categories {
		c.lists[cat] = seed[cat]
	}
}

// Get 品类内按名称查找
func (c *Catalog) Get(category, name string) *models.Product {
	for _, p := range c.lists[category] {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Find 跨品类按名称查找
func (c *Catalog) Find(name string) *models.Product {
	for _, cat := range models.Categories {
		if p := c.Get(cat, name); p != nil {
			return p
		}
	}
	return nil
}

func (c *Catalog) List(category string) []*models.Product {
	return c.lists[category]
}

// All 按品类顺序遍历全部商品
func (c *Catalog) All() []*models.Product {
	var out []*models.Product
	for _, cat := range models.Categories {
		out = append(out, c.lists[cat]...)
	}
	return out
}

func (c *Catalog) Append(p *models.Product) {
	c.lists[p.Category] = append(c.lists[p.Category], p)
}

func (c *Catalog) Delete(category, name string) bool {
	list := c.lists[category]
	for i, p := range list {
		if p.Name == name {
			c.lists[category] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// SetList 整体替换品类列表（库存排序用）
func (c *Catalog) SetList(category string, list []*models.Product) {
	c.lists[category] = list
}

// Snapshot 导出持久化形态
func (c *Catalog) Snapshot() map[string]CategoryList {
	out := make(map[string]CategoryList, len(models.Categories))
	for _, cat := range models.Categories {
		out[cat] = CategoryList{List: c.lists[cat]}
	}
	return out
}

// Restore 从持久化形态恢复，补齐缺省单位与品类字段
func (c *Catalog) Restore(snap map[string]CategoryList) {
	c.lists = make(map[string][]*models.Product)
	for _, cat := range models.Categories {
		list := snap[cat].List
		for _, p := range list {
			p.Category = cat
			if p.Unit == "" {
				p.Unit = models.DefaultUnit(cat)
			}
		}
		c.lists[cat] = list
	}
}

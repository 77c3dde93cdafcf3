package models

// 固定品类
const (
	CategoryFruit     = "fruit"
	CategoryVegetable = "vegetable"
	CategorySnack     = "snack"
	CategoryCigarette = "cigarette"
	CategoryLiquor    = "liquor"
	CategoryBeverage  = "beverage"
	CategoryFrozen    = "frozen"
	CategoryKitchen   = "kitchen"
	CategoryLiving    = "living"
)

// Categories 品类展示顺序
var Categories = []string{
	CategoryFruit,
	CategoryVegetable,
	CategorySnack,
	CategoryCigarette,
	CategoryLiquor,
	CategoryBeverage,
	CategoryFrozen,
	CategoryKitchen,
	CategoryLiving,
}

// CategoryNames 品类中文名
var CategoryNames = map[string]string{
	CategoryFruit:     "水果",
	CategoryVegetable: "蔬菜",
	CategorySnack:     "零食",
	CategoryCigarette: "香烟",
	CategoryLiquor:    "白酒",
	CategoryBeverage:  "饮料",
	CategoryFrozen:    "冷冻",
	CategoryKitchen:   "厨房用品",
	CategoryLiving:    "生活用品",
}

var defaultUnits = map[string]string{
	CategoryFruit:     "公斤",
	CategoryVegetable: "公斤",
	CategorySnack:     "个",
	CategoryCigarette: "包",
	CategoryLiquor:    "瓶",
	CategoryBeverage:  "瓶",
	CategoryFrozen:    "袋",
	CategoryKitchen:   "件",
	CategoryLiving:    "件",
}

// DefaultUnit 品类默认计量单位
func DefaultUnit(category string) string {
	if u, ok := defaultUnits[category]; ok {
		return u
	}
	return "个"
}

// ValidCategory 是否为已知品类
func ValidCategory(category string) bool {
	_, ok := defaultUnits[category]
	return ok
}

package types

// Topic 变更主题，展示层按主题局部刷新
type Topic string

const (
	TopicCatalog    Topic = "catalog"
	TopicDiscounts  Topic = "discounts"
	TopicMembers    Topic = "members"
	TopicSession    Topic = "session" // 当前会员指针
	TopicCart       Topic = "cart"
	TopicDeliveries Topic = "deliveries"
	TopicSales      Topic = "sales"
)

// ChangeSet 一次变更操作波及的主题集合
type ChangeSet struct {
	Topics []Topic `json:"topics"`
}

// Has 是否包含主题
func (c ChangeSet) Has(t Topic) bool {
	for _, x := range c.Topics {
		if x == t {
			return true
		}
	}
	return false
}

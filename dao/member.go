package dao

import "Minimart/models"

// Members 会员注册表：会员档案、单品会员价快照、当前验证会员指针
type Members struct {
	members []*models.Member
	prices  map[string]*models.MemberProductPrice
	current *models.Member
}

func NewMembers() *Members {
	return &Members{prices: make(map[string]*models.MemberProductPrice)}
}

func (m *Members) ByID(id int64) *models.Member {
	for _, mb := range m.members {
		if mb.ID == id {
			return mb
		}
	}
	return nil
}

func (m *Members) ByPhone(phone string) *models.Member {
	for _, mb := range m.members {
		if mb.Phone == phone {
			return mb
		}
	}
	return nil
}

// ByNameOrPhone 身份验证查找，只匹配在用会员
func (m *Members) ByNameOrPhone(key string) *models.Member {
	for _, mb := range m.members {
		if (mb.Name == key || mb.Phone == key) && mb.IsActive {
			return mb
		}
	}
	return nil
}

func (m *Members) All() []*models.Member {
	return m.members
}

func (m *Members) Append(mb *models.Member) {
	m.members = append(m.members, mb)
}

func (m *Members) Remove(id int64) bool {
	for i, mb := range m.members {
		if mb.ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return true
		}
	}
	return false
}

// Price 单品会员价快照，不存在返回 nil
func (m *Members) Price(name string) *models.MemberProductPrice {
	return m.prices[name]
}

func (m *Members) SetPrice(p *models.MemberProductPrice) {
	m.prices[p.Name] = p
}

func (m *Members) DeletePrice(name string) bool {
	if _, ok := m.prices[name]; !ok {
		return false
	}
	delete(m.prices, name)
	return true
}

func (m *Members) Prices() map[string]*models.MemberProductPrice {
	return m.prices
}

// Current 当前验证会员，未验证返回 nil
func (m *Members) Current() *models.Member {
	return m.current
}

func (m *Members) SetCurrent(mb *models.Member) {
	m.current = mb
}

func (m *Members) Restore(members []*models.Member, prices map[string]*models.MemberProductPrice, current *models.Member) {
	m.members = members
	if prices == nil {
		prices = make(map[string]*models.MemberProductPrice)
	}
	m.prices = prices
	m.current = current
	// 旧数据兜底：保证地址数组与默认索引自洽
	for _, mb := range m.members {
		if mb.Addresses == nil {
			mb.Addresses = []models.Address{}
			mb.DefaultAddressIndex = -1
		}
		if mb.DefaultAddressIndex >= len(mb.Addresses) {
			mb.DefaultAddressIndex = -1
		}
	}
}

package service

import (
	"strings"
	"time"

	"Minimart/dao"
	"Minimart/models"
	"Minimart/pkg/log"
	"Minimart/pkg/response"
	"Minimart/pkg/snowflake"
	"Minimart/types"

	"go.uber.org/zap"
)

// 默认会员折扣
const defaultMemberDiscount = 0.9

type MemberService struct {
	Store  *dao.Store
	Events *Publisher
}

var _ IMemberService = (*MemberService)(nil)

type IMemberService interface {
	AddMember(name, phone string) (*models.Member, error)
	DeleteMember(id int64) error
	SearchMembers(keyword string) []*models.Member
	Verify(nameOrPhone string) (*models.Member, error)
	ClearCurrent()
	Current() *models.Member

	AddAddress(memberID int64, address string) (*models.Address, error)
	SetDefaultAddress(memberID, addressID int64) error
	DeleteAddress(memberID, addressID int64) error

	SetMemberDiscount(productName string, discount float64) (*models.MemberProductPrice, error)
	SetBulkMemberDiscount(productNames []string, discount float64) ([]*models.MemberProductPrice, error)
	RemoveMemberPrice(productName string) error
	UpdateMemberPriceForProduct(productName string) *models.MemberProductPrice
	UpdateAllMemberPrices() int
	MemberPrice(productName string) *models.MemberProductPrice
	HasMemberPrice(productName string) bool
	SavingAmount(productName string) float64
	SearchMemberPrices(keyword string) []*models.MemberProductPrice
}

func (s *MemberService) AddMember(name, phone string) (*models.Member, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, response.Validationf("姓名和手机号不能为空")
	}
	if s.Store.Members.ByPhone(phone) != nil {
		return nil, response.Conflictf("该手机号已注册")
	}

	member := &models.Member{
		ID:                  snowflake.GenID(),
		Name:                name,
		Phone:               phone,
		Addresses:           []models.Address{},
		DefaultAddressIndex: -1,
		JoinDate:            time.Now().Format("2006-01-02"),
		Discount:            defaultMemberDiscount,
		IsActive:            true,
	}
	s.Store.Members.Append(member)
	s.Events.Commit(types.TopicMembers)
	return member, nil
}

func (s *MemberService) DeleteMember(id int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if !s.Store.Members.Remove(id) {
		return response.NotFoundf("会员不存在")
	}
	if cur := s.Store.Members.Current(); cur != nil && cur.ID == id {
		s.Store.Members.SetCurrent(nil)
		s.Events.Commit(types.TopicMembers, types.TopicSession)
		return nil
	}
	s.Events.Commit(types.TopicMembers)
	return nil
}

func (s *MemberService) SearchMembers(keyword string) []*models.Member {
	s.Store.Lock()
	defer s.Store.Unlock()

	all := s.Store.Members.All()
	if keyword == "" {
		return all
	}
	lower := strings.ToLower(keyword)
	var out []*models.Member
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), lower) || strings.Contains(m.Phone, keyword) {
			out = append(out, m)
			continue
		}
		for _, addr := range m.Addresses {
			if strings.Contains(strings.ToLower(addr.Address), lower) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Verify 会员身份验证，通过后设置当前会员指针。
// 购物车重定价由协调层在验证成功后触发
func (s *MemberService) Verify(nameOrPhone string) (*models.Member, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	key := strings.TrimSpace(nameOrPhone)
	if key == "" {
		return nil, response.Validationf("请输入姓名或手机号")
	}
	member := s.Store.Members.ByNameOrPhone(key)
	if member == nil {
		return nil, response.NotFoundf("会员验证失败，请检查姓名或手机号是否正确")
	}
	s.Store.Members.SetCurrent(member)
	s.Events.Commit(types.TopicSession)
	return member, nil
}

func (s *MemberService) ClearCurrent() {
	s.Store.Lock()
	defer s.Store.Unlock()

	s.Store.Members.SetCurrent(nil)
	s.Events.Commit(types.TopicSession)
}

func (s *MemberService) Current() *models.Member {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Members.Current()
}

func (s *MemberService) AddAddress(memberID int64, address string) (*models.Address, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	member := s.Store.Members.ByID(memberID)
	if member == nil {
		return nil, response.NotFoundf("会员不存在")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, response.Validationf("地址不能为空")
	}

	member.Addresses = append(member.Addresses, models.Address{
		ID:        snowflake.GenID(),
		Address:   address,
		CreatedAt: time.Now(),
	})
	// 第一个地址自动设为默认
	if len(member.Addresses) == 1 {
		member.DefaultAddressIndex = 0
	}
	s.Events.Commit(types.TopicMembers)
	return &member.Addresses[len(member.Addresses)-1], nil
}

func (s *MemberService) SetDefaultAddress(memberID, addressID int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	member := s.Store.Members.ByID(memberID)
	if member == nil {
		return response.NotFoundf("会员不存在")
	}
	idx := addressIndex(member, addressID)
	if idx == -1 {
		return response.NotFoundf("地址不存在")
	}
	member.DefaultAddressIndex = idx
	s.Events.Commit(types.TopicMembers)
	return nil
}

// DeleteAddress 删除地址。删除默认地址时，剩余地址提升第一个为默认；
// 删除默认之前的地址时，默认索引前移
func (s *MemberService) DeleteAddress(memberID, addressID int64) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	member := s.Store.Members.ByID(memberID)
	if member == nil {
		return response.NotFoundf("会员不存在")
	}
	idx := addressIndex(member, addressID)
	if idx == -1 {
		return response.NotFoundf("地址不存在")
	}

	member.Addresses = append(member.Addresses[:idx], member.Addresses[idx+1:]...)
	switch {
	case member.DefaultAddressIndex == idx:
		if len(member.Addresses) > 0 {
			member.DefaultAddressIndex = 0
		} else {
			member.DefaultAddressIndex = -1
		}
	case idx < member.DefaultAddressIndex:
		member.DefaultAddressIndex--
	}
	s.Events.Commit(types.TopicMembers)
	return nil
}

func addressIndex(member *models.Member, addressID int64) int {
	for i, addr := range member.Addresses {
		if addr.ID == addressID {
			return i
		}
	}
	return -1
}

func (s *MemberService) SetMemberDiscount(productName string, discount float64) (*models.MemberProductPrice, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	mp, err := setMemberDiscount(s.Store, productName, discount)
	if err != nil {
		return nil, err
	}
	s.Events.Commit(types.TopicMembers)
	return mp, nil
}

// SetBulkMemberDiscount 批量设置单品折扣，单个失败记日志跳过
func (s *MemberService) SetBulkMemberDiscount(productNames []string, discount float64) ([]*models.MemberProductPrice, error) {
	s.Store.Lock()
	defer s.Store.Unlock()

	if len(productNames) == 0 || discount <= 0 || discount > 1 {
		return nil, response.Validationf("商品列表和折扣率不能为空，折扣率范围0.01-1.0")
	}

	var out []*models.MemberProductPrice
	for _, name := range productNames {
		mp, err := setMemberDiscount(s.Store, name, discount)
		if err != nil {
			log.L.Warn("设置商品折扣率失败", zap.String("name", name), zap.Error(err))
			continue
		}
		out = append(out, mp)
	}
	s.Events.Commit(types.TopicMembers)
	return out, nil
}

func (s *MemberService) RemoveMemberPrice(productName string) error {
	s.Store.Lock()
	defer s.Store.Unlock()

	if !s.Store.Members.DeletePrice(productName) {
		return response.NotFoundf("该商品没有会员价")
	}
	s.Events.Commit(types.TopicMembers)
	return nil
}

// UpdateMemberPriceForProduct 原商品调价后按既有折扣率重算会员价
func (s *MemberService) UpdateMemberPriceForProduct(productName string) *models.MemberProductPrice {
	s.Store.Lock()
	defer s.Store.Unlock()

	mp := recomputeMemberPrice(s.Store, productName)
	if mp != nil {
		s.Events.Commit(types.TopicMembers)
	}
	return mp
}

// UpdateAllMemberPrices 批量重算全部会员价，返回更新条数
func (s *MemberService) UpdateAllMemberPrices() int {
	s.Store.Lock()
	defer s.Store.Unlock()

	n := 0
	for name := range s.Store.Members.Prices() {
		if recomputeMemberPrice(s.Store, name) != nil {
			n++
		}
	}
	if n > 0 {
		s.Events.Commit(types.TopicMembers)
	}
	return n
}

func (s *MemberService) MemberPrice(productName string) *models.MemberProductPrice {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Members.Price(productName)
}

func (s *MemberService) HasMemberPrice(productName string) bool {
	s.Store.Lock()
	defer s.Store.Unlock()
	return s.Store.Members.Price(productName) != nil
}

// SavingAmount 单品会员价相对原价的节省金额
func (s *MemberService) SavingAmount(productName string) float64 {
	s.Store.Lock()
	defer s.Store.Unlock()

	mp := s.Store.Members.Price(productName)
	if mp == nil {
		return 0
	}
	return mp.OriginalPrice - mp.MemberPrice
}

func (s *MemberService) SearchMemberPrices(keyword string) []*models.MemberProductPrice {
	s.Store.Lock()
	defer s.Store.Unlock()

	var out []*models.MemberProductPrice
	lower := strings.ToLower(keyword)
	for _, mp := range s.Store.Members.Prices() {
		if keyword == "" || strings.Contains(strings.ToLower(mp.Name), lower) {
			out = append(out, mp)
		}
	}
	return out
}

// 调用方持锁
func setMemberDiscount(store *dao.Store, productName string, discount float64) (*models.MemberProductPrice, error) {
	if productName == "" || discount <= 0 || discount > 1 {
		return nil, response.Validationf("商品名称和折扣率不能为空，折扣率范围0.01-1.0")
	}
	product := store.Catalog.Find(productName)
	if product == nil {
		return nil, response.NotFoundf("商品不存在")
	}

	mp := &models.MemberProductPrice{
		Name:          product.Name,
		Category:      product.Category,
		Icon:          product.Icon,
		OriginalPrice: product.Price,
		Discount:      discount,
		MemberPrice:   product.Price * discount,
	}
	store.Members.SetPrice(mp)
	return mp, nil
}

// 调用方持锁。商品已不在目录时记警告并返回 nil
func recomputeMemberPrice(store *dao.Store, productName string) *models.MemberProductPrice {
	mp := store.Members.Price(productName)
	if mp == nil {
		return nil
	}
	product := store.Catalog.Find(productName)
	if product == nil {
		log.L.Warn("商品不存在，无法更新会员价", zap.String("name", productName))
		return nil
	}
	mp.OriginalPrice = product.Price
	mp.MemberPrice = product.Price * mp.Discount
	return mp
}

// 调用方持锁。商品改名时迁移会员价条目
func moveMemberPrice(store *dao.Store, oldName, newName string) {
	mp := store.Members.Price(oldName)
	if mp == nil {
		return
	}
	store.Members.DeletePrice(oldName)
	if _, err := setMemberDiscount(store, newName, mp.Discount); err != nil {
		log.L.Warn("迁移会员价失败", zap.String("old", oldName), zap.String("new", newName), zap.Error(err))
	}
}

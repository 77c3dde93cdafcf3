package service

import (
	"testing"

	"Minimart/pkg/response"

	"github.com/stretchr/testify/require"
)

func TestAddMember(t *testing.T) {
	f := newFixture(t)

	m, err := f.member.AddMember("张三", "13800138000")
	require.NoError(t, err)
	require.InDelta(t, 0.9, m.Discount, 1e-9)
	require.True(t, m.IsActive)
	require.Equal(t, -1, m.DefaultAddressIndex)

	_, err = f.member.AddMember("李四", "13800138000")
	require.True(t, response.IsConflict(err))

	_, err = f.member.AddMember("", "13900000000")
	require.True(t, response.IsValidation(err))
}

func TestVerifyMember(t *testing.T) {
	f := newFixture(t)
	m, err := f.member.AddMember("张三", "13800138000")
	require.NoError(t, err)

	got, err := f.member.Verify("张三")
	require.NoError(t, err)
	require.Equal(t, m.ID, got.ID)
	require.NotNil(t, f.member.Current())

	_, err = f.member.Verify("13800138000")
	require.NoError(t, err)

	_, err = f.member.Verify("路人甲")
	require.True(t, response.IsNotFound(err))

	f.member.ClearCurrent()
	require.Nil(t, f.member.Current())
}

func TestDeleteMemberClearsCurrent(t *testing.T) {
	f := newFixture(t)
	m, _ := f.member.AddMember("张三", "13800138000")
	_, err := f.member.Verify("张三")
	require.NoError(t, err)

	require.NoError(t, f.member.DeleteMember(m.ID))
	require.Nil(t, f.member.Current())
}

func TestAddressDefaultPromotion(t *testing.T) {
	f := newFixture(t)
	m, _ := f.member.AddMember("张三", "13800138000")

	a1, err := f.member.AddAddress(m.ID, "幸福路1号")
	require.NoError(t, err)
	require.Equal(t, 0, m.DefaultAddressIndex) // 第一个地址自动默认

	a2, err := f.member.AddAddress(m.ID, "平安街2号")
	require.NoError(t, err)
	a3, err := f.member.AddAddress(m.ID, "和谐巷3号")
	require.NoError(t, err)

	require.NoError(t, f.member.SetDefaultAddress(m.ID, a3.ID))
	require.Equal(t, 2, m.DefaultAddressIndex)

	// 删默认地址：剩余第一个提升为默认
	require.NoError(t, f.member.DeleteAddress(m.ID, a3.ID))
	require.Equal(t, 0, m.DefaultAddressIndex)

	// 删默认之前的地址：默认索引前移
	require.NoError(t, f.member.SetDefaultAddress(m.ID, a2.ID))
	require.Equal(t, 1, m.DefaultAddressIndex)
	require.NoError(t, f.member.DeleteAddress(m.ID, a1.ID))
	require.Equal(t, 0, m.DefaultAddressIndex)
	require.Equal(t, "平安街2号", m.DefaultAddress().Address)

	// 删光：无默认
	require.NoError(t, f.member.DeleteAddress(m.ID, a2.ID))
	require.Equal(t, -1, m.DefaultAddressIndex)
	require.Nil(t, m.DefaultAddress())
}

func TestSearchMembers(t *testing.T) {
	f := newFixture(t)
	m, _ := f.member.AddMember("张三", "13800138000")
	f.member.AddMember("李四", "13900139000")
	_, err := f.member.AddAddress(m.ID, "幸福路1号")
	require.NoError(t, err)

	require.Len(t, f.member.SearchMembers(""), 2)
	require.Len(t, f.member.SearchMembers("张"), 1)
	require.Len(t, f.member.SearchMembers("139"), 1)
	require.Len(t, f.member.SearchMembers("幸福路"), 1)
	require.Empty(t, f.member.SearchMembers("王五"))
}

func TestSetMemberDiscount(t *testing.T) {
	f := newFixture(t)

	mp, err := f.member.SetMemberDiscount("苹果", 0.8)
	require.NoError(t, err)
	require.InDelta(t, 8.8, mp.MemberPrice, 1e-9)
	require.InDelta(t, 2.2, f.member.SavingAmount("苹果"), 1e-9)

	_, err = f.member.SetMemberDiscount("苹果", 1.5)
	require.True(t, response.IsValidation(err))
	_, err = f.member.SetMemberDiscount("不存在", 0.8)
	require.True(t, response.IsNotFound(err))
}

func TestSetBulkMemberDiscount(t *testing.T) {
	f := newFixture(t)

	out, err := f.member.SetBulkMemberDiscount([]string{"苹果", "不存在", "香蕉"}, 0.7)
	require.NoError(t, err)
	require.Len(t, out, 2) // 不存在的跳过

	_, err = f.member.SetBulkMemberDiscount(nil, 0.7)
	require.True(t, response.IsValidation(err))
}

func TestUpdateAllMemberPrices(t *testing.T) {
	f := newFixture(t)
	_, err := f.member.SetMemberDiscount("苹果", 0.8)
	require.NoError(t, err)
	_, err = f.member.SetMemberDiscount("香蕉", 0.8)
	require.NoError(t, err)

	// 直接改目录价后批量重算
	f.store.Catalog.Find("苹果").Price = 20
	require.Equal(t, 2, f.member.UpdateAllMemberPrices())
	require.InDelta(t, 16.0, f.member.MemberPrice("苹果").MemberPrice, 1e-9)
}

func TestRemoveMemberPrice(t *testing.T) {
	f := newFixture(t)
	_, err := f.member.SetMemberDiscount("苹果", 0.8)
	require.NoError(t, err)

	require.NoError(t, f.member.RemoveMemberPrice("苹果"))
	require.Nil(t, f.member.MemberPrice("苹果"))
	require.Zero(t, f.member.SavingAmount("苹果"))

	err = f.member.RemoveMemberPrice("苹果")
	require.True(t, response.IsNotFound(err))
}

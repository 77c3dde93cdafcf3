package service

import (
	"testing"

	"Minimart/models"
	"Minimart/pkg/response"
	"Minimart/types"

	"github.com/stretchr/testify/require"
)

func TestCreateDiscountByRatio(t *testing.T) {
	f := newFixture(t)

	dp, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 10,
	})
	require.NoError(t, err)
	require.Equal(t, "苹果(特价)", dp.Name)
	require.InDelta(t, 5.5, dp.DiscountPrice, 1e-9) // 11 × 0.5
	require.InDelta(t, 0.5, dp.Discount, 1e-9)
	require.Equal(t, "公斤", dp.Unit)
	require.Equal(t, "临期处理", dp.Reason)
	require.True(t, dp.IsActive)
}

func TestCreateDiscountByFixedPrice(t *testing.T) {
	f := newFixture(t)

	dp, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByFixed, FixedPrice: 8, Stock: 5,
	})
	require.NoError(t, err)
	require.InDelta(t, 8.0, dp.DiscountPrice, 1e-9)
	require.InDelta(t, 0.73, dp.Discount, 1e-9) // round2(8/11)

	// 固定价不得高于或等于原价
	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "香蕉", PricingMethod: models.PricingByFixed, FixedPrice: 6.4, Stock: 5,
	})
	require.True(t, response.IsValidation(err))
}

func TestCreateDiscountValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 0,
	})
	require.True(t, response.IsValidation(err))

	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 1.2, Stock: 5,
	})
	require.True(t, response.IsValidation(err))

	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "不存在", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 5,
	})
	require.True(t, response.IsNotFound(err))
}

func TestCreateDiscountDuplicateActive(t *testing.T) {
	f := newFixture(t)

	_, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 10,
	})
	require.NoError(t, err)

	// 同一原商品已有生效特价时拒绝
	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByFixed, FixedPrice: 6, Stock: 3,
	})
	require.True(t, response.IsConflict(err))
}

func TestSellDiscountDeactivatesWhenSoldOut(t *testing.T) {
	f := newFixture(t)

	dp, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 2,
	})
	require.NoError(t, err)

	err = f.discount.Sell(dp.ID, 3)
	require.True(t, response.IsInsufficientStock(err))

	require.NoError(t, f.discount.Sell(dp.ID, 2))
	require.False(t, dp.IsActive)
	require.Zero(t, dp.Stock)
	require.Nil(t, f.discount.FindActiveByOriginalName("苹果"))

	// 旧批次售罄后可再建新特价
	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.6, Stock: 5,
	})
	require.NoError(t, err)
}

func TestSearchDiscounts(t *testing.T) {
	f := newFixture(t)

	_, err := f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "苹果", PricingMethod: models.PricingByDiscount, Discount: 0.5, Stock: 10, Reason: "促销活动",
	})
	require.NoError(t, err)
	_, err = f.discount.Create(&types.CreateDiscountRequest{
		OriginalName: "牛奶", PricingMethod: models.PricingByDiscount, Discount: 0.8, Stock: 10,
	})
	require.NoError(t, err)

	require.Len(t, f.discount.Search(""), 2)
	require.Len(t, f.discount.Search("苹果"), 1)
	require.Len(t, f.discount.Search("促销"), 1)
	require.Len(t, f.discount.Search("临期"), 1) // 默认原因
	require.Empty(t, f.discount.Search("不存在"))
}

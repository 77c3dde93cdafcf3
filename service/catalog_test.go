package service

import (
	"testing"

	"Minimart/models"
	"Minimart/pkg/response"
	"Minimart/types"

	"github.com/stretchr/testify/require"
)

func TestAddProduct(t *testing.T) {
	f := newFixture(t)

	p, err := f.catalog.AddProduct(models.CategorySnack, &types.ProductRequest{
		Name: "辣条", Price: 3.5, Icon: "🌶️", InitialStock: 80,
	})
	require.NoError(t, err)
	require.Equal(t, "个", p.Unit) // 未给单位时取品类默认
	require.NotNil(t, f.catalog.Find("辣条"))

	// 同品类重名拒绝
	_, err = f.catalog.AddProduct(models.CategoryFruit, &types.ProductRequest{
		Name: "苹果", Price: 9, Icon: "🍎", InitialStock: 10,
	})
	require.True(t, response.IsConflict(err))

	// 不同品类允许同名
	_, err = f.catalog.AddProduct(models.CategoryBeverage, &types.ProductRequest{
		Name: "苹果", Price: 6, Icon: "🧃", InitialStock: 10,
	})
	require.NoError(t, err)
}

func TestAddProductValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.AddProduct("electronics", &types.ProductRequest{Name: "手机", Icon: "📱"})
	require.True(t, response.IsValidation(err))

	_, err = f.catalog.AddProduct(models.CategoryFruit, &types.ProductRequest{Name: " ", Icon: "🍎"})
	require.True(t, response.IsValidation(err))

	_, err = f.catalog.AddProduct(models.CategoryFruit, &types.ProductRequest{
		Name: "榴莲", Icon: "🍈", Price: -1,
	})
	require.True(t, response.IsValidation(err))
}

func TestRestock(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.catalog.Restock(models.CategoryFruit, "苹果", 20))
	require.InDelta(t, 70.0, f.catalog.Find("苹果").InitialStock, 1e-9)

	err := f.catalog.Restock(models.CategoryFruit, "苹果", 0)
	require.True(t, response.IsValidation(err))
	err = f.catalog.Restock(models.CategoryFruit, "杨梅", 5)
	require.True(t, response.IsNotFound(err))
}

func TestRecordLoss(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct("苹果", 45))

	// 剩余 5，损耗不能超过剩余
	err := f.catalog.RecordLoss(models.CategoryFruit, "苹果", 6)
	require.True(t, response.IsValidation(err))
	err = f.catalog.RecordLoss(models.CategoryFruit, "苹果", -1)
	require.True(t, response.IsValidation(err))

	require.NoError(t, f.catalog.RecordLoss(models.CategoryFruit, "苹果", 3))
	p := f.catalog.Find("苹果")
	require.InDelta(t, 3.0, p.Loss, 1e-9)
	require.InDelta(t, 2.0, p.NetStock(), 1e-9)
	require.InDelta(t, 5.0, p.Remaining(), 1e-9) // 损耗不动剩余库存口径
}

func TestRecordReturn(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct("苹果", 5))

	err := f.catalog.RecordReturn(models.CategoryFruit, "苹果", 6)
	require.True(t, response.IsValidation(err))

	require.NoError(t, f.catalog.RecordReturn(models.CategoryFruit, "苹果", 3))
	require.InDelta(t, 2.0, f.catalog.Find("苹果").Sold, 1e-9)
}

func TestUpdateProductRenameMovesMemberPrice(t *testing.T) {
	f := newFixture(t)

	_, err := f.member.SetMemberDiscount("苹果", 0.8)
	require.NoError(t, err)

	err = f.catalog.UpdateProduct(models.CategoryFruit, "苹果", &types.ProductRequest{
		Name: "红富士", Price: 12, Icon: "🍎", InitialStock: 50,
	})
	require.NoError(t, err)

	require.Nil(t, f.member.MemberPrice("苹果"))
	mp := f.member.MemberPrice("红富士")
	require.NotNil(t, mp)
	require.InDelta(t, 0.8, mp.Discount, 1e-9)
	require.InDelta(t, 12*0.8, mp.MemberPrice, 1e-9)
}

func TestUpdateProductPriceRecomputesMemberPrice(t *testing.T) {
	f := newFixture(t)

	_, err := f.member.SetMemberDiscount("苹果", 0.8)
	require.NoError(t, err)

	err = f.catalog.UpdateProduct(models.CategoryFruit, "苹果", &types.ProductRequest{
		Name: "苹果", Price: 10, Icon: "🍎", InitialStock: 50,
	})
	require.NoError(t, err)

	mp := f.member.MemberPrice("苹果")
	require.InDelta(t, 8.0, mp.MemberPrice, 1e-9)
	require.InDelta(t, 10.0, mp.OriginalPrice, 1e-9)
}

func TestUpdateProductRenameCollision(t *testing.T) {
	f := newFixture(t)

	err := f.catalog.UpdateProduct(models.CategoryFruit, "苹果", &types.ProductRequest{
		Name: "香蕉", Price: 11, Icon: "🍎", InitialStock: 50,
	})
	require.True(t, response.IsConflict(err))
}

func TestClearSales(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct("苹果", 5))
	require.NoError(t, f.catalog.RecordLoss(models.CategoryFruit, "苹果", 2))

	n := f.catalog.ClearSales(models.CategoryFruit, []string{"苹果", "不存在"})
	require.Equal(t, 1, n)
	p := f.catalog.Find("苹果")
	require.Zero(t, p.Sold)
	require.Zero(t, p.Loss)
}

func TestStockStatus(t *testing.T) {
	f := newFixture(t)

	p := f.catalog.Find("苹果")
	require.Equal(t, models.StockAmple, p.StockStatus())

	require.NoError(t, f.cart.AddProduct("苹果", 45))
	require.Equal(t, models.StockLow, f.catalog.Find("苹果").StockStatus())

	require.NoError(t, f.cart.AddProduct("苹果", 5))
	require.Equal(t, models.StockOut, f.catalog.Find("苹果").StockStatus())
}

func TestSortInventory(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.catalog.SortInventory(models.CategoryBeverage, types.SortByPrice, true))
	views := f.catalog.ListViews(models.CategoryBeverage)
	require.Len(t, views, 3)
	require.Equal(t, "可乐", views[0].Name) // 3.5 < 4.5 < 5.0
	require.Equal(t, "牛奶", views[1].Name)
	require.Equal(t, "橙汁", views[2].Name)

	require.NoError(t, f.catalog.SortInventory(models.CategoryBeverage, types.SortByPrice, false))
	require.Equal(t, "橙汁", f.catalog.ListViews(models.CategoryBeverage)[0].Name)

	err := f.catalog.SortInventory("unknown", types.SortByPrice, true)
	require.True(t, response.IsValidation(err))
}

func TestCategoryStats(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cart.AddProduct("苹果", 10))

	st := f.catalog.Stats(models.CategoryFruit)
	require.Equal(t, 2, st.Kinds)
	require.InDelta(t, 80.0, st.TotalInitial, 1e-9) // 苹果50 + 香蕉30
	require.InDelta(t, 10.0, st.TotalSold, 1e-9)
	require.InDelta(t, 70.0, st.TotalRemaining, 1e-9)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSalesListNewestFirst(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.cart.AddProduct("苹果", 1))
	r1, err := f.cart.Checkout()
	require.NoError(t, err)
	require.NoError(t, f.cart.AddProduct("香蕉", 1))
	r2, err := f.cart.Checkout()
	require.NoError(t, err)

	records := f.sales.List()
	require.Len(t, records, 2)
	require.Equal(t, r2.ID, records[0].ID)
	require.Equal(t, r1.ID, records[1].ID)
}

func TestSalesStats(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.cart.AddProduct("苹果", 2)) // 22
	_, err := f.cart.Checkout()
	require.NoError(t, err)
	require.NoError(t, f.cart.AddProduct("香蕉", 5)) // 32
	_, err = f.cart.Checkout()
	require.NoError(t, err)

	st := f.sales.Stats()
	require.Equal(t, 2, st.TotalCount)
	require.InDelta(t, 54.0, st.TotalAmount, 1e-9)
	require.Equal(t, 2, st.TodayCount) // 刚结算的都算今天
	require.InDelta(t, 54.0, st.TodayAmount, 1e-9)
	require.InDelta(t, 27.0, st.AverageOrderValue, 1e-9)
}

func TestSalesStatsEmpty(t *testing.T) {
	f := newFixture(t)

	st := f.sales.Stats()
	require.Zero(t, st.TotalCount)
	require.Zero(t, st.AverageOrderValue) // 无记录时客单价为0，不除零
}

func TestDeleteSalesRecords(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.cart.AddProduct("苹果", 1))
	r1, err := f.cart.Checkout()
	require.NoError(t, err)
	require.NoError(t, f.cart.AddProduct("香蕉", 1))
	_, err = f.cart.Checkout()
	require.NoError(t, err)

	n := f.sales.DeleteRecords([]int64{r1.ID, 999})
	require.Equal(t, 1, n)
	require.Len(t, f.sales.List(), 1)

	require.Zero(t, f.sales.DeleteRecords(nil))
}

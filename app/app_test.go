package app

import (
	"os"
	"path/filepath"
	"testing"

	"Minimart/config"
	"Minimart/types"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "minimart.json")
	return cfg
}

func TestLoadAllSeedsEmptyStore(t *testing.T) {
	a := InitApp(testConfig(t))
	a.LoadAll()

	// 空存储用种子目录兜底
	require.NotNil(t, a.Catalog.Find("苹果"))
	require.InDelta(t, 11.0, a.Catalog.Find("苹果").Price, 1e-9)
	require.Empty(t, a.Delivery.List())
	require.Nil(t, a.Member.Current())
}

func TestReloadRoundTrip(t *testing.T) {
	cfg := testConfig(t)

	a := InitApp(cfg)
	a.LoadAll()
	require.NoError(t, a.Cart.AddProduct("苹果", 3))
	_, err := a.Cart.Checkout()
	require.NoError(t, err)
	m, err := a.Member.AddMember("张三", "13800138000")
	require.NoError(t, err)
	a.SaveAll()

	// 重启后状态还原
	b := InitApp(cfg)
	b.LoadAll()
	require.InDelta(t, 3.0, b.Catalog.Find("苹果").Sold, 1e-9)
	require.Len(t, b.Sales.List(), 1)
	got := b.Store.Members.ByID(m.ID)
	require.NotNil(t, got)
	require.Equal(t, "13800138000", got.Phone)
}

func TestCorruptNamespaceFallsBackIndependently(t *testing.T) {
	cfg := testConfig(t)

	a := InitApp(cfg)
	a.LoadAll()
	_, err := a.Member.AddMember("张三", "13800138000")
	require.NoError(t, err)
	a.SaveAll()

	// 只破坏商品区：目录退回种子，会员区不受影响
	data, err := os.ReadFile(cfg.Storage.Path)
	require.NoError(t, err)
	bad, err := sjson.Set(string(data), "supermarket_categories", 42)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.Storage.Path, []byte(bad), 0o644))

	b := InitApp(cfg)
	b.LoadAll()
	require.NotNil(t, b.Catalog.Find("苹果"))
	require.Len(t, b.Member.SearchMembers("张三"), 1)
}

func TestVerifyMemberRepricesCart(t *testing.T) {
	a := InitApp(testConfig(t))
	a.LoadAll()

	_, err := a.Member.AddMember("张三", "13800138000")
	require.NoError(t, err)
	require.NoError(t, a.Cart.AddProduct("苹果", 1))
	require.InDelta(t, 11.0, a.Cart.Lines()[0].Price, 1e-9)

	_, err = a.VerifyMember("张三")
	require.NoError(t, err)
	require.InDelta(t, 9.9, a.Cart.Lines()[0].Price, 1e-9)

	a.ClearMember()
	require.InDelta(t, 11.0, a.Cart.Lines()[0].Price, 1e-9)
}

func TestSubscribeReceivesChangeSet(t *testing.T) {
	a := InitApp(testConfig(t))
	a.LoadAll()

	var got []types.ChangeSet
	a.Subscribe(func(cs types.ChangeSet) { got = append(got, cs) })

	require.NoError(t, a.Cart.AddProduct("苹果", 1))
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	require.True(t, last.Has(types.TopicCart))
	require.True(t, last.Has(types.TopicCatalog))
	require.False(t, last.Has(types.TopicSales))
}

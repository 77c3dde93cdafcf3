package service

import (
	"Minimart/dao"
	"Minimart/pkg/log"

	"go.uber.org/zap"
)

// PricingResolver 价格仲裁：给定商品与当前会员/特价状态，裁定唯一生效单价。
// 优先级：特价行锁定特价 > 购物车已有特价版本时原价 > 会员价 > 目录价。
// 所有方法假定调用方已持有 Store 锁
type PricingResolver struct {
	Store *dao.Store
}

// EffectivePrice 会员生效价：有单品会员价用单品会员价，
// 否则有验证会员时按默认会员折扣，无会员返回原价
func (r *PricingResolver) EffectivePrice(name string, originalPrice float64) float64 {
	cur := r.Store.Members.Current()
	if cur == nil {
		return originalPrice
	}
	if mp := r.Store.Members.Price(name); mp != nil {
		return mp.MemberPrice
	}
	return originalPrice * cur.Discount
}

// RegularUnitPrice 原价商品入车单价：购物车里已有该商品的特价版本时
// 压制会员价（同一批次不重复让利），否则按会员生效价
func (r *PricingResolver) RegularUnitPrice(name string, catalogPrice float64) float64 {
	if r.discountVersionInCart(name) {
		return catalogPrice
	}
	return r.EffectivePrice(name, catalogPrice)
}

// 生效中的特价商品且其特价行已在购物车
func (r *PricingResolver) discountVersionInCart(name string) bool {
	if r.Store.Discounts.ActiveByOriginalName(name) == nil {
		return false
	}
	for _, l := range r.Store.Cart.Lines() {
		if l.IsDiscount() && l.OriginalName == name {
			return true
		}
	}
	return false
}

// ReconcileCart 购物车调价：加行、删行、会员状态变化后必须重跑。
// 第一遍逐行重算（有特价版本在车则回退原价，否则可享会员价）；
// 第二遍按原商品名分组消除冲突（同组同时出现特价行与低于原价的
// 非特价行时，非特价行强制回到原价）
func (r *PricingResolver) ReconcileCart() {
	lines := r.Store.Cart.Lines()

	for i := range lines {
		l := &lines[i]
		if l.IsDiscount() {
			continue
		}

		if r.discountVersionInCart(l.Name) {
			if l.Price < l.OriginalPrice {
				log.L.Info("购物车存在特价版本，恢复原价",
					zap.String("name", l.Name), zap.Float64("price", l.OriginalPrice))
			}
			l.Price = l.OriginalPrice
			l.Total = l.Price * l.Quantity
			continue
		}

		// 先回到原价再套会员价，保证会员退出后价格还原
		l.Price = l.OriginalPrice
		if r.Store.Members.Current() != nil {
			member := r.EffectivePrice(l.Name, l.OriginalPrice)
			if member < l.OriginalPrice {
				l.Price = member
			}
		}
		l.Total = l.Price * l.Quantity
	}

	groups := make(map[string][]int)
	for i := range lines {
		key := lines[i].GroupName()
		groups[key] = append(groups[key], i)
	}
	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		hasDiscount, hasUnderpriced := false, false
		for _, i := range idxs {
			if lines[i].IsDiscount() {
				hasDiscount = true
			} else if lines[i].Price < lines[i].OriginalPrice {
				hasUnderpriced = true
			}
		}
		if !hasDiscount || !hasUnderpriced {
			continue
		}
		for _, i := range idxs {
			l := &lines[i]
			if !l.IsDiscount() && l.Price < l.OriginalPrice {
				l.Price = l.OriginalPrice
				l.Total = l.Price * l.Quantity
			}
		}
	}
}

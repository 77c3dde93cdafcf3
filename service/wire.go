package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPublisher,
	wire.Struct(new(PricingResolver), "*"),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(DiscountService), "*"),
	wire.Bind(new(IDiscountService), new(*DiscountService)),

	wire.Struct(new(MemberService), "*"),
	wire.Bind(new(IMemberService), new(*MemberService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(DeliveryService), "*"),
	wire.Bind(new(IDeliveryService), new(*DeliveryService)),

	wire.Struct(new(SalesService), "*"),
	wire.Bind(new(ISalesService), new(*SalesService)),
)

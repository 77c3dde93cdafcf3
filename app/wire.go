//go:build wireinject
// +build wireinject

package app

import (
	"Minimart/config"
	"Minimart/dao"
	"Minimart/service"

	"github.com/google/wire"
)

func InitApp(cfg *config.Config) *App {
	wire.Build(
		config.ProvideStorage,
		ProvideGateway,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(App), "*"),
	)
	return nil
}

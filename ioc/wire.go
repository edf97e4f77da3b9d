//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/portfolio/internal/auth"
	"github.com/ecodeclub/portfolio/internal/contact"
	"github.com/ecodeclub/portfolio/internal/export"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/viewstate"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitAuthConfig,
		InitOwner,
		InitCookieConfig,
		InitPrinter,
		auth.InitModule,
		profile.InitModule,
		contact.InitModule,
		viewstate.InitModule,
		export.InitModule,
		InitWebServer,
		InitAdminServer)
	return new(App), nil
}

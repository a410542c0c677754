package pack

import (
	"github.com/huffpack/huffpack/internal/module/pack/controller"
	"github.com/huffpack/huffpack/internal/module/pack/service"
	"go.uber.org/fx"
)

// register bulky of pack module
var NewPackModule = fx.Options(
	// register service of pack module
	fx.Provide(service.NewPackService),

	// register controller of pack module
	fx.Provide(controller.NewPackController),
	fx.Provide(controller.NewOtherController),

	fx.Provide(controller.NewController),
)

package shared

import (
	"go.uber.org/fx"
)

var NewSharedModule = fx.Options(
	fx.Provide(NewConfInstance),
	fx.Provide(NewLogger),
)

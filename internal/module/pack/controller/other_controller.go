package controller

import (
	prometheusfasthttp "github.com/gohutool/boot4go-prometheus/fasthttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type otherController struct {
	logger zerolog.Logger
}

type OtherController interface {
	HandleHealthz(ctx *fasthttp.RequestCtx)
	HandleMetrics(ctx *fasthttp.RequestCtx)
}

func NewOtherController(logger zerolog.Logger) OtherController {
	controller := &otherController{
		logger: logger.With().Str("name", "other_controller").Logger(),
	}

	return controller
}

// The service holds no connections or state, so liveness is all there is to
// report.
func (o *otherController) HandleHealthz(ctx *fasthttp.RequestCtx) {
	ctx.Success("application/text", []byte("ok"))
}

func (o *otherController) HandleMetrics(ctx *fasthttp.RequestCtx) {
	prometheusfasthttp.PrometheusHandler(prometheusfasthttp.HandlerOpts{})(ctx)
}

package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/huffpack/huffpack/internal/common"
	"github.com/huffpack/huffpack/internal/core/huffman"
	"github.com/huffpack/huffpack/internal/module/pack/service"
	"github.com/huffpack/huffpack/utils"
	"github.com/huffpack/huffpack/utils/helpers"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type packController struct {
	logger  zerolog.Logger
	service service.PackService
}

type PackController interface {
	HandleEncode(ctx *fasthttp.RequestCtx)
	HandleDecode(ctx *fasthttp.RequestCtx)
}

func NewPackController(
	logger zerolog.Logger,
	service service.PackService,
) PackController {
	controller := &packController{
		logger:  logger.With().Str("name", "pack_controller").Logger(),
		service: service,
	}

	return controller
}

// HandleEncode compresses the request body and answers with the binary
// container plus size headers. Every request gets its own table, tree and
// codebook; nothing is shared between concurrent encodes.
func (p *packController) HandleEncode(ctx *fasthttp.RequestCtx) {
	var (
		start = time.Now()
		id    = uuid.NewString()
		body  = ctx.PostBody()
	)

	data, err := p.service.Encode(string(body))
	if err != nil {
		utils.TotalEncodes.WithLabelValues("error").Inc()
		p.fail(ctx, id, err, "Encode failed")
		return
	}

	ratio := helpers.Ratio(int64(len(body)), int64(len(data)))

	utils.TotalEncodes.WithLabelValues("ok").Inc()
	utils.OperationDurations.WithLabelValues("encode").Observe(time.Since(start).Seconds())
	utils.TotalBytesIn.WithLabelValues("encode").Add(float64(len(body)))
	utils.TotalBytesOut.WithLabelValues("encode").Add(float64(len(data)))
	utils.CompressionRatios.Observe(ratio)

	ctx.Response.Header.Set("X-Request-Id", id)
	ctx.Response.Header.Set("X-Original-Size", strconv.Itoa(len(body)))
	ctx.Response.Header.Set("X-Compressed-Size", strconv.Itoa(len(data)))
	ctx.Response.Header.Set("X-Compression-Ratio", strconv.FormatFloat(ratio, 'f', 2, 64))
	ctx.Success("application/octet-stream", data)
}

// HandleDecode parses the request body as a container and answers with the
// reconstructed text.
func (p *packController) HandleDecode(ctx *fasthttp.RequestCtx) {
	var (
		start = time.Now()
		id    = uuid.NewString()
		body  = ctx.PostBody()
	)

	text, err := p.service.Decode(body)
	if err != nil {
		utils.TotalDecodes.WithLabelValues("error").Inc()
		p.fail(ctx, id, err, "Decode failed")
		return
	}

	utils.TotalDecodes.WithLabelValues("ok").Inc()
	utils.OperationDurations.WithLabelValues("decode").Observe(time.Since(start).Seconds())
	utils.TotalBytesIn.WithLabelValues("decode").Add(float64(len(body)))
	utils.TotalBytesOut.WithLabelValues("decode").Add(float64(len(text)))

	ctx.Response.Header.Set("X-Request-Id", id)
	ctx.Success("text/plain; charset=utf-8", []byte(text))
}

func (p *packController) fail(ctx *fasthttp.RequestCtx, id string, err error, msg string) {
	p.logger.Error().Str("request_id", id).Err(err).Msg(msg)

	var coded common.CodedErrors
	switch {
	case common.IsCodedErrors(err):
		coded = err.(common.CodedErrors)
	case errors.Is(err, huffman.ErrCorruptContainer):
		coded = common.BadRequestError(msg, err)
	case errors.Is(err, huffman.ErrSymbolOutOfRange):
		coded = common.UnprocessableEntityError(msg, err)
	default:
		coded = common.InternalServerError(msg, err)
	}

	ctx.Response.Header.Set("X-Request-Id", id)
	ctx.SetStatusCode(coded.StatusCode())
	ctx.SetContentType("application/json")
	ctx.SetBody(coded.Body())
}

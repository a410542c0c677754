package controller

import (
	"log"
	"strconv"
	"testing"

	"github.com/huffpack/huffpack/internal/module/pack/service"
	"github.com/huffpack/huffpack/utils/config"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

func newConfig(value map[string]any) *config.Conf {
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}
	if err := conf.Load(confmap.Provider(value, "."), nil); err != nil {
		log.Fatal(err)
	}
	return conf
}

func newPackController() PackController {
	return NewPackController(
		zerolog.Nop(),
		service.NewPackService(newConfig(map[string]any{}), zerolog.Nop()),
	)
}

func TestHandleEncodeDecode(t *testing.T) {
	packController := newPackController()
	text := "round and round the ragged rock the ragged rascal ran"

	encodeCtx := &fasthttp.RequestCtx{}
	encodeCtx.Request.SetBody([]byte(text))
	packController.HandleEncode(encodeCtx)

	if status := encodeCtx.Response.StatusCode(); status != fasthttp.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if got, want := string(encodeCtx.Response.Header.Peek("X-Original-Size")), strconv.Itoa(len(text)); got != want {
		t.Errorf("expected X-Original-Size %s, got %s", want, got)
	}
	if len(encodeCtx.Response.Header.Peek("X-Request-Id")) == 0 {
		t.Error("expected an X-Request-Id header")
	}

	decodeCtx := &fasthttp.RequestCtx{}
	decodeCtx.Request.SetBody(encodeCtx.Response.Body())
	packController.HandleDecode(decodeCtx)

	if status := decodeCtx.Response.StatusCode(); status != fasthttp.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if got := string(decodeCtx.Response.Body()); got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
}

func TestHandleDecodeCorrupt(t *testing.T) {
	packController := newPackController()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte{0, 0, 0, 9, 1, 'x'})
	packController.HandleDecode(ctx)

	if status := ctx.Response.StatusCode(); status != fasthttp.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", status)
	}
}

func TestHandleEncodeOutOfRange(t *testing.T) {
	packController := newPackController()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte("astral plane: 😀"))
	packController.HandleEncode(ctx)

	if status := ctx.Response.StatusCode(); status != fasthttp.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", status)
	}
}

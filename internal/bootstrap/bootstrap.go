package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/huffpack/huffpack/internal/application"
	"github.com/huffpack/huffpack/internal/module/pack"
	"github.com/huffpack/huffpack/internal/module/pack/controller"
	"github.com/huffpack/huffpack/internal/module/pack/service"
	"github.com/huffpack/huffpack/internal/module/shared"
	"github.com/huffpack/huffpack/utils"
	"github.com/huffpack/huffpack/utils/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	fxzerolog "github.com/efectn/fx-zerolog"
	"github.com/prometheus/client_golang/prometheus"
)

// StartServer runs the HTTP compression service until interrupted.
func StartServer() {
	prometheus.MustRegister(utils.TotalEncodes)
	prometheus.MustRegister(utils.TotalDecodes)
	prometheus.MustRegister(utils.OperationDurations)
	prometheus.MustRegister(utils.TotalBytesIn)
	prometheus.MustRegister(utils.TotalBytesOut)
	prometheus.MustRegister(utils.CompressionRatios)

	fx.New(
		// provide modules
		shared.NewSharedModule,
		pack.NewPackModule,

		// application
		fx.Provide(application.NewApplication),

		// define options
		fx.WithLogger(fxzerolog.Init()),
		fx.StartTimeout(time.Minute),
		fx.StopTimeout(time.Minute),

		// launch
		fx.Invoke(InitServer),
	).Run()
}

// function to start webserver
func InitServer(
	lifecycle fx.Lifecycle,
	conf *config.Conf,
	logger zerolog.Logger,
	controller *controller.Controller,
	app *application.Application,
) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger = logger.With().Str("name", "server").Logger()

				go func() {
					controller.RegisterRoutes()

					logger.Info().Msg("🚀 " + app.AppName + " is running! listen on http://" + app.Hostname + ":" + app.Port)
					if err := app.Run(); err != nil {
						logger.Error().Err(err).Msg("An unknown error occurred when to run server!")
					}
				}()

				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Info().Msg("Running cleanup tasks...")

				if err := app.Shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("An unknown error occurred when to shutdown the Server!")
				} else {
					logger.Info().Msg("Shutdown the Server succesfully!")
				}

				logger.Info().Msgf("%s was successful shutdown.", app.AppName)

				return nil
			},
		},
	)
}

// RunEncode is the one-shot CLI encode: no fx container, just conf, logger
// and the service.
func RunEncode(inputPath, outputPath string) error {
	conf := shared.NewConfInstance()
	logger := shared.NewLogger(conf)

	stats, err := service.NewPackService(conf, logger).EncodeFile(inputPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Original size: %d bytes\n", stats.OriginalSize)
	fmt.Printf("Compressed size: %d bytes\n", stats.CompressedSize)
	fmt.Printf("Compression ratio: %.2fx\n", stats.Ratio)

	return nil
}

// RunDecode is the one-shot CLI decode.
func RunDecode(inputPath, outputPath string) error {
	conf := shared.NewConfInstance()
	logger := shared.NewLogger(conf)

	if err := service.NewPackService(conf, logger).DecodeFile(inputPath, outputPath); err != nil {
		return err
	}

	fmt.Printf("Decoded %s into %s\n", inputPath, outputPath)

	return nil
}

package cmd

import (
	"context"
	"eticket-invoice/outbound/image"
	"eticket-invoice/outbound/pdf"
	"eticket-invoice/outbound/qrcode"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"log"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newImageFetcher(cfg *viper.Viper) *image.Fetcher {
	fetcher := &image.Fetcher{Cfg: cfg}
	fetcher.Init()

	return fetcher
}

func newRenderEngine(cfg *viper.Viper) *pdf.Engine {
	return pdf.NewEngine(cfg, newImageFetcher(cfg), &qrcode.Generator{})
}

func newTracerProvider(ctx context.Context, cfg *viper.Viper) *sdktrace.TracerProvider {
	if !cfg.GetBool("otel.enabled") {
		return nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.GetString("otel.endpoint")),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		log.Fatalln(err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return tp
}

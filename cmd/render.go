package cmd

import (
	"context"
	"encoding/json"
	"eticket-invoice/model"
	"log"
	"log/slog"
	"os"
)

func runRenderCmd(ctx context.Context, args []string) {
	cfg := newCfg("env")

	tp := newTracerProvider(ctx, cfg)
	if tp != nil {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				slog.Error("failed to shutdown tracer provider", slog.Any("error", err))
			}
		}()
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalln("unable to read order file", err)
	}

	var order model.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		log.Fatalln("unable to parse order file", err)
	}

	outputPath := "invoice.pdf"
	if len(args) > 1 {
		outputPath = args[1]
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalln("unable to create output file", err)
	}
	defer out.Close()

	engine := newRenderEngine(cfg)
	if err := engine.Render(ctx, order, out); err != nil {
		log.Fatalln("unable to render invoice", err)
	}

	slog.Info("invoice rendered", slog.String("output", outputPath))
}

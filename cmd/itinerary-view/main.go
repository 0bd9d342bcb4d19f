package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/itinerary-view/config"
	"github.com/theoremus-urban-solutions/itinerary-view/formatter"
	"github.com/theoremus-urban-solutions/itinerary-view/internal/logging"
	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
	"github.com/theoremus-urban-solutions/itinerary-view/server"
	"github.com/theoremus-urban-solutions/itinerary-view/tripquery"
)

type options struct {
	mode       string
	format     string
	input      string
	configPath string
	heading    string
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "oneshot", "oneshot|serve")
	flag.StringVar(&opts.format, "format", "text", "html|json|text|pdf")
	flag.StringVar(&opts.input, "input", "", "trip query response file or URL (empty renders the heading only)")
	flag.StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"), "path to config file")
	flag.StringVar(&opts.heading, "heading", "", "section heading (overrides config)")
	flag.StringVar(&opts.out, "out", "", "output file (default stdout)")
	flag.Parse()

	if err := config.LoadAppConfig(opts.configPath); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Config
	if opts.heading != "" {
		cfg.View.Heading = opts.heading
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.mode {
	case "oneshot":
		err = runOneshot(ctx, cfg, opts)
	case "serve":
		err = server.New(cfg, log).Run(ctx)
	default:
		err = fmt.Errorf("unknown mode %q", opts.mode)
	}
	if err != nil {
		log.Error("itinerary-view failed", zap.String("mode", opts.mode), zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func runOneshot(ctx context.Context, cfg config.AppConfig, opts options) error {
	format, err := formatter.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	client := tripquery.NewClient(time.Duration(cfg.OTP.TimeoutMS) * time.Millisecond)
	result, err := client.Load(ctx, opts.input)
	if err != nil {
		return fmt.Errorf("load trip query: %w", err)
	}

	list := itinerary.BuildList(result, itinerary.Options{Heading: cfg.View.Heading, Width: cfg.View.Width})
	buf, err := formatter.NewResponseBuilder().WithPDFFont(cfg.View.PDFFontPath).Build(list, format)
	if err != nil {
		return err
	}
	if format == formatter.FormatText {
		buf = append(buf, '\n')
	}

	var w io.Writer = os.Stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	_, err = w.Write(buf)
	return err
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	transit "github.com/u0927156/MBTAProject"
	"github.com/u0927156/MBTAProject/config"
	"github.com/u0927156/MBTAProject/formatter"
	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/metrics"
)

type options struct {
	mode       string
	from       string
	to         string
	near       string
	format     string
	feed       string
	configPath string
	refresh    bool
	debug      bool
}

func main() {
	var o options
	flag.StringVar(&o.mode, "mode", "lines", "route|lines|report|stops|serve")
	flag.StringVar(&o.from, "from", "", "starting stop name (route mode)")
	flag.StringVar(&o.to, "to", "", "destination stop name (route mode)")
	flag.StringVar(&o.near, "near", "", "lat,lon; with -mode stops prints the nearest stop")
	flag.StringVar(&o.format, "format", "text", "text|json|xml")
	flag.StringVar(&o.feed, "feed", "", "feed name from config.feeds[]")
	flag.StringVar(&o.configPath, "config", "", "config file (default: config.yml, config.yaml or config.toml)")
	flag.BoolVar(&o.refresh, "refresh", false, "ignore a cached snapshot and fetch fresh data")
	flag.BoolVar(&o.debug, "debug", false, "debug logging and an index dump on stderr")
	flag.Parse()

	if err := run(context.Background(), o, os.Stdout); err != nil {
		logging.LogError(slog.Default(), "mbta-routes failed", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.AppConfig, error) {
	if path != "" {
		return config.LoadAppConfigFrom(path)
	}
	cfg, err := config.LoadAppConfigFrom(config.DefaultPaths...)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func run(ctx context.Context, o options, out io.Writer) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if o.debug {
		level = "debug"
	}
	logging.InitLoggingTo(os.Stderr, level, cfg.Log.Format)
	logger := logging.Component("cli")

	switch o.mode {
	case "route":
		if o.from == "" || o.to == "" {
			return errors.New("route mode needs -from and -to")
		}
	case "lines", "report", "stops", "serve":
	default:
		return fmt.Errorf("unknown mode %q", o.mode)
	}
	if o.format != "text" && o.format != "json" && o.format != "xml" {
		return fmt.Errorf("unknown format %q", o.format)
	}

	m := metrics.New()
	feed := config.SelectFeed(cfg, o.feed)
	p, err := newProvider(feed, cfg.Cache, m, o.refresh)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	snap, err := p.Fetch(fetchCtx)
	if err != nil {
		return fmt.Errorf("load %s: %w", p.Name(), err)
	}

	planner := transit.NewPlanner(snap, cfg.Cache.RouteCacheSize, m)
	if o.debug {
		logger.Debug("index dump", slog.String("dump", planner.Index().Dump()))
	}

	if o.mode == "serve" {
		srv := transit.NewServer(planner, m, cfg.Server)
		if err := srv.Start(); err != nil {
			return err
		}
		srv.HandleGracefulShutdown()
		return nil
	}

	res, err := query(planner, o)
	if err != nil {
		return err
	}
	return render(out, o.format, res)
}

func query(p *transit.Planner, o options) (any, error) {
	now := time.Now()
	switch o.mode {
	case "route":
		r, err := p.FindRoute(o.from, o.to)
		if err != nil {
			return nil, err
		}
		return formatter.NewRouteResponse(r, p.Index(), now), nil
	case "report":
		return formatter.NewReportResponse(p.Report(), p.Index(), now), nil
	case "stops":
		if o.near == "" {
			return formatter.NewStopsResponse(p.Index(), now), nil
		}
		lat, lon, err := transit.ParseLatLon(o.near)
		if err != nil {
			return nil, err
		}
		stop, km, err := p.NearestStop(lat, lon)
		if err != nil {
			return nil, err
		}
		return formatter.NewNearestStopResponse(stop, km, p.Index(), now), nil
	default:
		return formatter.NewLinesResponse(p.Index(), now), nil
	}
}

func render(out io.Writer, format string, res any) error {
	rb := &formatter.ResponseBuilder{Indent: true}
	var (
		b   []byte
		err error
	)
	switch format {
	case "json":
		b, err = rb.BuildJSON(res)
	case "xml":
		b, err = rb.BuildXML(res)
	default:
		var s string
		s, err = rb.BuildText(res)
		b = []byte(s)
	}
	if err != nil {
		return err
	}
	if _, err := out.Write(b); err != nil {
		return err
	}
	if format != "text" {
		_, err = fmt.Fprintln(out)
	}
	return err
}

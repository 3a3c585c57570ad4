// Command studentdir is a line-oriented front end for the student directory.
//
// It reads one command per line from stdin and prints one JSON document per
// result. Type "help" for the command list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hupe1980/studentdir"
	"github.com/hupe1980/studentdir/codec"
	"github.com/hupe1980/studentdir/prommetrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// knownMajors are offered as suggestions only; any major is accepted.
var knownMajors = []string{"Knitting", "Ninjitsu", "Basket Weaving", "Underwater Origami"}

var (
	codecName   = flag.String("codec", codec.Default.Name(), "output codec ("+strings.Join(codec.Names(), ", ")+")")
	logLevel    = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	logJSON     = flag.Bool("log-json", false, "log as JSON instead of text")
	metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	known       = flag.String("known", "", "comma-separated list replacing the suggested majors")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "studentdir: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, ok := codec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", *codecName)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := studentdir.NewTextLogger(level)
	if *logJSON {
		logger = studentdir.NewJSONLogger(level)
	}

	optFns := []studentdir.Option{studentdir.WithLogger(logger)}

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())

		mc, err := prommetrics.New(reg)
		if err != nil {
			return err
		}
		optFns = append(optFns, studentdir.WithMetricsCollector(mc))

		srv := &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", *metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	dir, err := studentdir.New(optFns...)
	if err != nil {
		return err
	}

	suggestions := knownMajors
	if list := splitList(*known); len(list) > 0 {
		suggestions = list
	}

	sh := &shell{
		dir:   dir,
		codec: c,
		known: suggestions,
		out:   os.Stdout,
	}
	return sh.run(ctx, os.Stdin)
}

// splitList splits a comma-separated flag value, dropping blanks around and
// between the elements.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

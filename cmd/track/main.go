package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"reframe/internal/platform/config"
	"reframe/internal/platform/logger"
	"reframe/pkg/analytics"
	"reframe/pkg/analytics/backends/capture"
)

// main sends a single telemetry event through the real capture backend. Used
// to smoke-test write keys and dashboard wiring without booting the app.
func main() {
	eventName := flag.String("event", "", "event name to track (e.g. user_downloaded)")
	screenName := flag.String("screen", "", "screen name to record instead of an event")
	logLabel := flag.String("log", "", "label to send as a generic log event")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(cfg.Development)

	backend, err := capture.New(capture.Config{
		Endpoint:        cfg.CaptureEndpoint,
		AndroidWriteKey: cfg.AndroidWriteKey,
		IOSWriteKey:     cfg.IOSWriteKey,
		Platform:        capture.Platform(cfg.Platform),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "track: %v\n", err)
		os.Exit(1)
	}

	client := analytics.New(backend,
		analytics.WithLogger(log),
		analytics.WithDevelopmentMode(func() bool { return cfg.Development }),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch {
	case *screenName != "":
		client.Screen(ctx, *screenName)
		log.Info("screen recorded", "name", *screenName)
	case *logLabel != "":
		client.Log(ctx, *logLabel, nil)
		log.Info("log event sent", "label", *logLabel)
	case *eventName != "":
		// Generic delivery check; the app itself uses the typed catalog.
		if err := backend.Track(ctx, *eventName); err != nil {
			fmt.Fprintf(os.Stderr, "track: %v\n", err)
			os.Exit(1)
		}
		log.Info("event sent", "event", *eventName)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

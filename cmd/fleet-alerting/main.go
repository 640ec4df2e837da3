package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aquanet/fleet-alerting/internal/pkg/application/dispatcher"
	"github.com/aquanet/fleet-alerting/internal/pkg/application/events"
	"github.com/aquanet/fleet-alerting/internal/pkg/application/liveness"
	"github.com/aquanet/fleet-alerting/internal/pkg/application/retention"
	"github.com/aquanet/fleet-alerting/internal/pkg/application/sensors"
	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/push"
	"github.com/aquanet/fleet-alerting/internal/pkg/infrastructure/storage"
	"github.com/aquanet/fleet-alerting/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
)

const serviceName string = "fleet-alerting"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	limitsFile
	subscribersFile

	offlineThresholdMs
	sweepInterval
	notifyBackOnline

	pushAPIURL
	pushAPIKey

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		limitsFile:      "/opt/aquanet/config/sensorlimits.yaml",
		subscribersFile: "/opt/aquanet/config/subscribers.yaml",

		offlineThresholdMs: "240000",
		sweepInterval:      "1m",
		notifyBackOnline:   "true",

		pushAPIURL: "",
		pushAPIKey: "",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "fleet",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not create or connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "failed to initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	livenessCfg, err := parseLivenessConfig(flags)
	exitIf(err, logger, "invalid liveness configuration")

	sensorCfg, err := loadSensorConfig(flags[limitsFile])
	exitIf(err, logger, "could not load sensor limits")

	forwarderCfg, err := loadSubscriberConfig(flags[subscribersFile])
	exitIf(err, logger, "could not load subscriber configuration")

	sweeper := liveness.New(s, messenger, livenessCfg)
	monitor := sensors.New(s, messenger, sensorCfg)
	sender := push.NewClient(flags[pushAPIURL], flags[pushAPIKey])
	dispatch := dispatcher.New(s, sender, events.New(forwarderCfg), messenger)
	retainer := retention.New(s, retention.DefaultConfig())

	messenger.Start()

	err = monitor.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register sensor value handler")

	err = dispatch.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register notification handler")

	sweeper.Start(ctx)
	retainer.Start(ctx)

	router, err := api.RegisterHandlers(ctx, chi.NewRouter(), s, messenger)
	exitIf(err, logger, "failed to register api handlers")

	webServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort]),
		Handler: router,
	}

	go func() {
		logger.Info("starting web server", "address", webServer.Addr)

		svcErr := webServer.ListenAndServe()
		if svcErr != nil && svcErr != http.ErrServerClosed {
			exitIf(svcErr, logger, "web server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sweeper.Stop(shutdownCtx)
	retainer.Stop(shutdownCtx)

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("web server shutdown failed", "err", err.Error())
	}

	messenger.Close()
	s.Close()
}

func parseLivenessConfig(flags flagMap) (*liveness.Config, error) {
	cfg := liveness.DefaultConfig()

	thresholdMs, err := strconv.ParseInt(flags[offlineThresholdMs], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid offline threshold: %w", err)
	}
	cfg.OfflineThreshold = time.Duration(thresholdMs) * time.Millisecond

	cfg.SweepInterval, err = time.ParseDuration(flags[sweepInterval])
	if err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	cfg.NotifyBackOnline, err = strconv.ParseBool(flags[notifyBackOnline])
	if err != nil {
		return nil, fmt.Errorf("invalid notify back online flag: %w", err)
	}

	return cfg, nil
}

// loadSensorConfig falls back to the built-in reef limits when no
// configuration file has been mounted.
func loadSensorConfig(path string) (*sensors.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sensors.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return sensors.LoadConfiguration(f)
}

func loadSubscriberConfig(path string) (*events.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return events.LoadConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[offlineThresholdMs] = envOrDef(ctx, "OFFLINE_THRESHOLD_MS", flags[offlineThresholdMs])
	flags[sweepInterval] = envOrDef(ctx, "SWEEP_INTERVAL", flags[sweepInterval])
	flags[notifyBackOnline] = envOrDef(ctx, "NOTIFY_BACK_ONLINE", flags[notifyBackOnline])

	flags[pushAPIURL] = envOrDef(ctx, "PUSH_API_URL", flags[pushAPIURL])
	flags[pushAPIKey] = envOrDef(ctx, "PUSH_API_KEY", flags[pushAPIKey])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("limits", "sensor limits configuration file", apply(limitsFile))
	flag.Func("subscribers", "webhook subscriber configuration file", apply(subscribersFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}

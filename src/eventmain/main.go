package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jiaming2012/optionshq/src/data"
	"github.com/jiaming2012/optionshq/src/dbutils"
	"github.com/jiaming2012/optionshq/src/eventconsumers"
	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventproducers"
	"github.com/jiaming2012/optionshq/src/eventproducers/accountapi"
	"github.com/jiaming2012/optionshq/src/eventproducers/candidatesapi"
	"github.com/jiaming2012/optionshq/src/eventproducers/watchlistapi"
	"github.com/jiaming2012/optionshq/src/eventservices"
	"github.com/jiaming2012/optionshq/src/utils"
)

const (
	defaultSnapTradeBaseURL = "https://api.snaptrade.com"
	defaultScanInterval     = 15 * time.Minute
)

func main() {
	run()
}

func mustGetEnv(key string) string {
	value, err := utils.GetEnv(key)
	if err != nil {
		log.Fatalf("$%s not set: %v", key, err)
	}

	return value
}

func loadScreenerConfig() eventmodels.ScreenerConfigYAML {
	configFile := os.Getenv("SCREENER_CONFIG_FILE")
	if configFile == "" {
		log.Info("SCREENER_CONFIG_FILE not set: using default screener config")
		return eventmodels.DefaultScreenerConfig()
	}

	config, err := eventmodels.LoadScreenerConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load screener config: %v", err)
	}

	return config
}

func setupWatchlistStore() data.WatchlistStore {
	postgresHost := os.Getenv("POSTGRES_HOST")
	if postgresHost == "" {
		log.Warn("POSTGRES_HOST not set: watchlist is kept in memory")
		return data.NewInMemoryWatchlistStore()
	}

	db, err := dbutils.InitPostgres(
		postgresHost,
		utils.GetEnvOrDefault("POSTGRES_PORT", "5432"),
		mustGetEnv("POSTGRES_USER"),
		mustGetEnv("POSTGRES_PASSWORD"),
		mustGetEnv("POSTGRES_DB"),
	)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	return data.NewDatabaseService(db)
}

// setupScanWorker returns nil when SCAN_INTERVAL is "0".
func setupScanWorker(wg *sync.WaitGroup, scanner eventconsumers.CandidateScanner, watchlist data.WatchlistStore, config eventmodels.ScreenerConfigYAML) *eventconsumers.WatchlistScanWorker {
	interval := defaultScanInterval
	if value := os.Getenv("SCAN_INTERVAL"); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Fatalf("invalid SCAN_INTERVAL %q: %v", value, err)
		}

		interval = d
	}

	if interval <= 0 {
		log.Info("SCAN_INTERVAL disabled: background watchlist scans are off")
		return nil
	}

	return eventconsumers.NewWatchlistScanWorker(wg, scanner, watchlist, config, interval)
}

func run() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	log.SetOutput(os.Stdout)
	if level, err := log.ParseLevel(utils.GetEnvOrDefault("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	log.Infof("Log level set to %v", log.GetLevel())

	// Set up Telemetry
	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
		log.InfoLevel,
	)))

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		otelShutdown, err := setupOTelSDK(ctx)
		if err != nil {
			log.Fatalf("failed to setup otel sdk: %v", err)
		}

		defer func() {
			if err := otelShutdown(context.Background()); err != nil {
				log.Errorf("failed to shutdown otel sdk: %v", err)
			}
		}()
	}

	port := mustGetEnv("PORT")
	polygonApiKey := mustGetEnv("POLYGON_API_KEY")

	snapTrade := eventservices.NewSnapTradeClient(eventservices.SnapTradeConfig{
		BaseURL:     utils.GetEnvOrDefault("SNAPTRADE_BASE_URL", defaultSnapTradeBaseURL),
		ClientID:    mustGetEnv("SNAPTRADE_CLIENT_ID"),
		ConsumerKey: mustGetEnv("SNAPTRADE_CONSUMER_KEY"),
		UserID:      mustGetEnv("SNAPTRADE_USER_ID"),
		UserSecret:  mustGetEnv("SNAPTRADE_USER_SECRET"),
	})

	screenerConfig := loadScreenerConfig()
	watchlist := setupWatchlistStore()

	optionsChainFetcher := eventservices.NewPolygonOptionsChainFetcher(polygonApiKey)
	scanner := eventservices.NewCandidateScanner(optionsChainFetcher, screenerConfig.RequestsPerSecond, screenerConfig.MaxConcurrency)
	portfolioService := eventservices.NewPortfolioService(snapTrade)

	var latestCandidates *candidatesapi.ReadLatestCandidatesExecutor
	if worker := setupScanWorker(&wg, scanner, watchlist, screenerConfig); worker != nil {
		worker.Start(ctx)
		latestCandidates = &candidatesapi.ReadLatestCandidatesExecutor{Source: worker}
	}

	// Setup router
	router := mux.NewRouter()
	router.Use(routeTagMiddleware)

	accountapi.SetupHandler(
		router.PathPrefix("/accounts").Subrouter(),
		&accountapi.ReadAccountsExecutor{Accounts: snapTrade},
		&accountapi.ReadPortfolioExecutor{Portfolio: portfolioService},
		&accountapi.ReadActivitiesExecutor{Activities: snapTrade},
	)

	watchlistapi.SetupHandler(router.PathPrefix("/watchlist").Subrouter(), watchlist)

	candidatesapi.SetupHandler(router.PathPrefix("/candidates").Subrouter(), &candidatesapi.ReadCandidatesExecutor{
		Scanner:   scanner,
		Watchlist: watchlist,
		Config:    screenerConfig,
		Now:       time.Now,
	}, latestCandidates)

	router.HandleFunc("/version/app", func(w http.ResponseWriter, r *http.Request) {
		eventproducers.ApiRequestHandler3(&eventmodels.EmptyRequest{}, &eventservices.AppVersion{}, w, r)
	}).Methods(http.MethodGet)

	// Setup web server
	srv := &http.Server{
		Handler: otelhttp.NewHandler(router, serviceName),
		Addr:    fmt.Sprintf(":%s", port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shutdown server: %v", err)
	}

	cancel()
	wg.Wait()

	log.Info("Main: gracefully stopped!")
}

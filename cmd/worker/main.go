package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"InvestAdvisor/internal/api"
	"InvestAdvisor/internal/config"
	"InvestAdvisor/internal/loader"
	"InvestAdvisor/internal/notifier"
	"InvestAdvisor/internal/runstate"
	"InvestAdvisor/internal/scheduler"
	"InvestAdvisor/internal/store"
	"InvestAdvisor/internal/worker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] InvestAdvisor starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init data-lake source
	var source loader.Source
	if cfg.Datalake.BaseURL != "" {
		source = loader.NewHTTPSource(cfg.Datalake.BaseURL, cfg.Datalake.APIKey, cfg.Proxy)
	} else {
		source = loader.NewDirSource(cfg.Datalake.Dir)
	}
	log.Printf("[INFO] data lake source: %s", source.Name())

	ld := loader.NewLoader(source)

	// Init document store
	var docStore store.DocumentStore
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			docStore = store.NewNoopStore()
		} else {
			docStore = ss
			defer ss.Close()
		}
	} else {
		docStore = store.NewNoopStore()
	}

	// Init run state
	state, err := runstate.NewManager(cfg.Worker.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init run state: %v", err)
	}

	// Init notifier
	var notif notifier.Notifier
	if cfg.Notifier.WebhookURL != "" {
		notif = notifier.NewWebhookNotifier(cfg.Notifier.WebhookURL, cfg.Proxy)
	} else {
		notif = notifier.NewNoopNotifier()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init message bus and batch consumer
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer bus.Close()

	w := worker.New(ld, docStore, state, notif)
	consumer := worker.NewConsumer(bus, cfg.Bus.Topic, w)
	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("[FATAL] start batch consumer: %v", err)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(bus, cfg.Bus.Topic)
	if err := sched.Register(cfg.Schedule.BatchCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init read API
	srv := api.NewServer(docStore, state, bus, cfg.Bus.Topic, cfg.API.DefaultClientID)
	httpSrv := &http.Server{Addr: cfg.API.ListenAddr, Handler: srv.Router()}
	go func() {
		log.Printf("[INFO] read API listening on %s", cfg.API.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, requesting batch run now")
		if err := worker.RequestRun(bus, cfg.Bus.Topic, "startup"); err != nil {
			log.Printf("[ERROR] startup batch run: %v", err)
		}
	}

	log.Println("[INFO] InvestAdvisor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] InvestAdvisor stopped")
}

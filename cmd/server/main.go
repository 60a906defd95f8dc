package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cbodonnell/civboard/pkg/api"
	"github.com/cbodonnell/civboard/pkg/config"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/queue"
	"github.com/cbodonnell/civboard/pkg/repositories"
	"github.com/cbodonnell/civboard/pkg/state"
	"github.com/cbodonnell/civboard/pkg/version"
	"github.com/cbodonnell/civboard/pkg/workers"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	port := flag.Int("port", 0, "port to listen on, overrides the config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if connStr := os.Getenv("CIVBOARD_DATABASE_URL"); connStr != "" {
		cfg.Database.URL = connStr
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting board server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := repositories.Open(ctx, cfg.Database.URL, cfg.Database.Migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	dirtyQueue := queue.NewInMemoryQueue[string](cfg.Save.QueueSize)
	boardManager := state.NewInMemoryBoardManager(dirtyQueue)

	n, err := workers.LoadBoards(ctx, repository, boardManager)
	if err != nil {
		panic(fmt.Sprintf("Failed to load boards: %v", err))
	}
	log.Info("Loaded %d boards", n)

	saveBoardWorker := workers.NewSaveBoardWorker(workers.NewSaveBoardWorkerOptions{
		Repository: repository,
		Manager:    boardManager,
		DirtyQueue: dirtyQueue,
		Interval:   cfg.Save.Interval(),
	})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		saveBoardWorker.Start(ctx)
	}()

	apiServerOpts := api.NewAPIServerOptions{
		Port:        cfg.Server.Port,
		AllowOrigin: cfg.Server.AllowOrigin,
		Manager:     boardManager,
	}
	if cfg.Server.TLSCertFile != "" && cfg.Server.TLSKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.Server.TLSCertFile,
			KeyFile:  cfg.Server.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
	// the save worker flushes pending boards before returning
	wg.Wait()
}

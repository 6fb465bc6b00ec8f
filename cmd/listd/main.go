package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/lueurxax/singlell/internal/lists"
	"github.com/lueurxax/singlell/internal/log"
	"github.com/lueurxax/singlell/internal/metrics"
	redisRepo "github.com/lueurxax/singlell/internal/repo/redis"
	"github.com/lueurxax/singlell/internal/server"
)

var version = "dev"

type config struct {
	log.Config
	RedisAddress   string        `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"10s"`
	// Lists restored from redis on start, every stored list when empty.
	Restore []string `envconfig:"RESTORE"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logger := log.New(cfg.Config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.WithError(err).Error("close redis")
		}
	}()

	db := redisRepo.NewDB(rdb, logger.Pkg("redis"))
	if err := db.Migrate(ctx); err != nil {
		panic(err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	service := metrics.NewMetricMiddleware(lists.NewService(db, logger.Pkg("lists")), registry)

	restore := cfg.Restore
	if len(restore) == 0 {
		names, err := service.Snapshots(ctx)
		if err != nil {
			panic(err)
		}

		restore = names
	}

	for _, name := range restore {
		if err := service.Load(ctx, name); err != nil {
			logger.WithField("name", name).WithError(err).Warn("restore failed")
		}
	}

	reporter := metrics.NewReporter(service, cfg.ReportInterval, registry, logger.Pkg("metrics"))
	go reporter.Start(ctx)

	srv := server.NewServer(server.GetConfig(), service, registry, logger.Pkg("server"))

	logger.WithField("version", version).Info("service started")

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}

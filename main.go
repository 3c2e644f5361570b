package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/qubic/go-service-status/server"
	"github.com/qubic/go-service-status/status"
)

const envPrefix = "STATUS_SERVICE"

type config struct {
	Server struct {
		Host            string        `conf:"default:0.0.0.0"`
		Port            int           `conf:"default:8000"`
		StatusPath      string        `conf:"default:/api/hello"`
		ReadTimeout     time.Duration `conf:"default:5s"`
		WriteTimeout    time.Duration `conf:"default:5s"`
		IdleTimeout     time.Duration `conf:"default:60s"`
		ShutdownTimeout time.Duration `conf:"default:10s"`
	}
	Status struct {
		Language string `conf:"default:go"`
	}
	Metrics struct {
		Enabled   bool   `conf:"default:true"`
		Path      string `conf:"default:/metrics"`
		Namespace string `conf:"default:status_service"`
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("main: exited with error: %s", err.Error())
	}
}

func run() error {
	log.SetOutput(os.Stdout) // default is stderr

	// local development only, missing files are fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] main: could not load .env file: %v", err)
	}

	var cfg config
	if err := conf.Parse(os.Args[1:], envPrefix, &cfg); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage(envPrefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString(envPrefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	out, err := conf.String(&cfg)
	if err != nil {
		return errors.Wrap(err, "generating config for output")
	}
	log.Printf("main: Config :\n%v\n", out)

	var metrics *server.Metrics
	if cfg.Metrics.Enabled {
		metrics = server.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	} else {
		log.Println("[WARN] main: Metrics disabled")
	}

	srv := server.New(serverConfig(cfg), status.NewHandler(cfg.Status.Language, time.Now), metrics)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		log.Printf("main: Starting status endpoint on [%s].", cfg.Server.StatusPath)
		serverError <- srv.Start()
	}()

	log.Println("main: Service started.")

	for {
		select {
		case <-shutdown:
			log.Println("main: Received shutdown signal, shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return errors.Wrap(err, "shutting down server")
			}
			return nil
		case err := <-serverError:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return errors.Wrap(err, "running server")
		}
	}
}

func serverConfig(cfg config) server.Config {
	return server.Config{
		Address:      net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		StatusPath:   cfg.Server.StatusPath,
		MetricsPath:  cfg.Metrics.Path,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

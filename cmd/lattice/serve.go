package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/latticekit/lattice"
	"github.com/latticekit/lattice/internal/config"
	"github.com/latticekit/lattice/internal/logging"
	httpAdapter "github.com/latticekit/lattice/pkg/adapters/http"
	"github.com/latticekit/lattice/pkg/adapters/memory"
	redisAdapter "github.com/latticekit/lattice/pkg/adapters/redis"
	"github.com/latticekit/lattice/pkg/counter"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lattice store server",
	Long:  `Starts a store with the configured counter instances, exposing dispatch and instance views over a JSON API, plus Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")

		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}

		logger := logging.New(parseLevel(cfg.LogLevel))

		var snapshots ports.SnapshotStore
		switch cfg.Storage.Backend {
		case "redis":
			snapshots = redisAdapter.New(
				cfg.Storage.Redis.Address,
				cfg.Storage.Redis.Password,
				cfg.Storage.Redis.DB,
				redisAdapter.WithTTL(time.Duration(cfg.Storage.Redis.TTL)),
			)
		default:
			snapshots = memory.NewStore()
		}

		registry := prometheus.NewRegistry()
		store := lattice.New(
			lattice.WithLogger(logger),
			lattice.WithMetrics(registry),
			lattice.WithStateStore(snapshots),
		)

		server := httpAdapter.NewServer(store)

		for _, id := range cfg.Instances {
			inst := counter.At(id)
			store.Mount(inst.ID, inst.Lens, inst.SliceReducer())
			server.RegisterInstance(inst.ID, inst.Selectors)
			store.Track(inst.ID, func(id string, snap domain.Snapshot) domain.Action {
				return counter.SetData(id, map[string]any(snap))
			}, inst.Snapshot)
		}

		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := store.Hydrate(runCtx); err != nil {
			fmt.Printf("Error hydrating instances: %v\n", err)
			os.Exit(1)
		}

		checkpointerDone := make(chan struct{})
		go func() {
			defer close(checkpointerDone)
			store.RunCheckpointer(runCtx)
		}()

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		mux.Handle("/", httpAdapter.NewHandler(server))

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: mux,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Lattice Server on %s\n", srv.Addr)
			fmt.Printf("Instances: %v (storage: %s)\n", cfg.Instances, cfg.Storage.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}

			// Stop the checkpointer; its shutdown path flushes once more.
			cancel()
			<-checkpointerDone

			fmt.Println("Lattice Server stopped gracefully")
		}
	},
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/latticekit/lattice"
	"github.com/latticekit/lattice/internal/config"
	"github.com/latticekit/lattice/internal/logging"
	mcpAdapter "github.com/latticekit/lattice/pkg/adapters/mcp"
	"github.com/latticekit/lattice/pkg/counter"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the store as an MCP server",
	Long:  `Starts an MCP server with dispatch and read tools over the configured counter instances, on stdio by default or SSE with --sse.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		ssePort, _ := cmd.Flags().GetInt("sse")

		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}

		logger := logging.New(parseLevel(cfg.LogLevel))
		store := lattice.New(lattice.WithLogger(logger))
		server := mcpAdapter.NewServer(store)

		for _, id := range cfg.Instances {
			inst := counter.At(id)
			store.Mount(inst.ID, inst.Lens, inst.SliceReducer())
			server.RegisterInstance(inst.ID, inst.Selectors)
		}

		if ssePort > 0 {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := server.ServeSSE(ctx, ssePort); err != nil {
				fmt.Printf("MCP server error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Int("sse", 0, "Serve over SSE on the given port instead of stdio")
}

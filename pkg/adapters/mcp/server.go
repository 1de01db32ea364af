// Package mcp exposes a lattice store as an MCP server, so agent hosts
// can dispatch actions and read instance views as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/latticekit/lattice"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
	"github.com/latticekit/lattice/pkg/scope"
)

// Store is the surface the MCP server needs from the state container.
type Store interface {
	ports.Dispatcher
	ports.StateSource
	Keys() []string
}

// Server wraps a lattice store and exposes it as an MCP server.
type Server struct {
	store     Store
	mcpServer *server.MCPServer

	mu    sync.RWMutex
	views map[string]map[string]scope.GlobalSelector[any]
}

// NewServer creates a new MCP server instance.
func NewServer(store Store) *Server {
	s := &Server{
		store:     store,
		views:     make(map[string]map[string]scope.GlobalSelector[any]),
		mcpServer: server.NewMCPServer("lattice-mcp", strings.TrimSpace(lattice.Version)),
	}
	s.registerTools()
	return s
}

// RegisterInstance exposes an instance's globalized selectors under its id.
func (s *Server) RegisterInstance(instanceID string, selectors map[string]scope.GlobalSelector[any]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[instanceID] = selectors
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	dispatchTool := mcp.NewTool("dispatch_action",
		mcp.WithDescription("Dispatch an action to the state store. The action is scoped to one instance via instance_id."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Action type, e.g. INCREMENT, DECREMENT, SET_COLOR, SET_DATA")),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Target instance id")),
		mcp.WithString("payload", mcp.Description("JSON-encoded payload (optional)")),
	)
	s.mcpServer.AddTool(dispatchTool, s.handleDispatch)

	readTool := mcp.NewTool("read_instance",
		mcp.WithDescription("Read one instance's selector-derived view."),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Instance id to read")),
	)
	s.mcpServer.AddTool(readTool, s.handleRead)

	listTool := mcp.NewTool("list_instances",
		mcp.WithDescription("List the mounted instance ids."),
	)
	s.mcpServer.AddTool(listTool, s.handleList)
}

func (s *Server) handleDispatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actionType, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	instanceID, err := req.RequireString("instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var payload any
	if raw := req.GetString("payload", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			// Not JSON: treat the raw string as the payload (e.g. a color).
			payload = raw
		}
	}

	s.store.Dispatch(domain.Action{
		Type:    domain.Kind(actionType),
		Payload: payload,
		Meta:    domain.Meta{InstanceID: instanceID},
	})

	return s.instanceResult(instanceID)
}

func (s *Server) handleRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, err := req.RequireString("instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.instanceResult(instanceID)
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(map[string]any{"instances": s.store.Keys()})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) instanceResult(instanceID string) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	selectors, ok := s.views[instanceID]
	s.mu.RUnlock()
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown instance %q", instanceID)), nil
	}

	state := s.store.State()
	view := make(map[string]any, len(selectors))
	for name, sel := range selectors {
		view[name] = sel(state)
	}

	data, err := json.Marshal(view)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

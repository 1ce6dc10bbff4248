// Package mcp exposes coverage checking as Model Context Protocol
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitewise/camcheck/application/service"
	"github.com/sitewise/camcheck/domain/plan"
	"github.com/sitewise/camcheck/infrastructure/api/v1/dto"
)

// Server wraps the MCP server with camcheck tools.
type Server struct {
	mcpServer *server.MCPServer
	checks    *service.Check
	logger    *slog.Logger
}

// NewServer creates an MCP server exposing coverage tools backed by
// the given check service.
func NewServer(checks *service.Check, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{checks: checks, logger: logger}

	mcpServer := server.NewMCPServer(
		"camcheck",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)
	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	checkTool := mcp.NewTool("check_coverage",
		mcp.WithDescription("Check whether a set of camera envelopes fully covers a target envelope in distance x light-level space"),
		mcp.WithString("plan",
			mcp.Required(),
			mcp.Description("Site plan in YAML: a target with distance/light ranges and a list of cameras with id, distance and light ranges"),
		),
	)
	mcpServer.AddTool(checkTool, s.handleCheckCoverage)

	getTool := mcp.NewTool("get_check",
		mcp.WithDescription("Retrieve a stored coverage check by its ID"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Numeric ID of the stored check"),
		),
	)
	mcpServer.AddTool(getTool, s.handleGetCheck)
}

// handleCheckCoverage handles the check_coverage tool invocation.
func (s *Server) handleCheckCoverage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planDoc, err := request.RequireString("plan")
	if err != nil {
		return mcp.NewToolResultError("plan is required"), nil
	}

	target, cameras, err := plan.Parse(strings.NewReader(planDoc))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	record, err := s.checks.Run(ctx, target, cameras)
	if err != nil {
		s.logger.Error("coverage check failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(dto.FromRecord(record))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetCheck handles the get_check tool invocation.
func (s *Server) handleGetCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid id: %s", idStr)), nil
	}

	record, err := s.checks.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get check", slog.String("id", idStr), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to get check: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(dto.FromRecord(record))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for HTTP mounting.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

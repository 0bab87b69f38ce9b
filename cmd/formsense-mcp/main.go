// SPDX-License-Identifier: Apache-2.0

// formsense-mcp serves the field and option matchers as MCP tools over
// stdio. Logs go to stderr; stdout belongs to the protocol.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/formsenseproj/formsense-mcp/internal/llmclass"
	"github.com/formsenseproj/formsense-mcp/internal/tool"
)

const version = "0.3.0"

var (
	logLevel    string
	llmEndpoint string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "formsense-mcp",
		Short: "MCP server that maps form fields to person-profile attributes",
		Long: `formsense-mcp exposes two tools over the Model Context Protocol:

  match_field   identify which profile attribute a form field represents
  match_fields  resolve a whole form in document order under one session
  match_option  choose the option of a select control that best represents
                a desired profile value

The server speaks MCP over stdin/stdout.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&llmEndpoint, "llm-endpoint", "",
		"URL of a local text-generation endpoint used as the external classification stage (empty disables it)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if llmEndpoint != "" {
		tool.SetClassifier(llmclass.New(llmclass.WithEndpoint(llmEndpoint)))
		slog.Info("external classifier enabled", "endpoint", llmEndpoint)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "formsense-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(server, tool.MetadataMatchField, tool.MatchField)
	mcp.AddTool(server, tool.MetadataMatchFields, tool.MatchFields)
	mcp.AddTool(server, tool.MetadataMatchOption, tool.MatchOption)

	slog.Info("server starting", "version", version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		slog.Error("server stopped", "error", err)
		return err
	}
	slog.Info("server stopped")
	return nil
}

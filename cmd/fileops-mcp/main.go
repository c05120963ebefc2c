// Package main implements the MCP server for text-file operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/textkit/fileops-mcp/internal/filesystem"
	"github.com/textkit/fileops-mcp/internal/filterspec"
)

var fileSystem *filesystem.Service

func main() {
	var filterPath string

	cmd := &cobra.Command{
		Use:   "fileops-mcp [root-path]",
		Short: "MCP bridge for text-file operations",
		Long: `fileops-mcp is a Model Context Protocol (MCP) server that exposes
common text-file operations for a directory tree: reading files as
filtered lines, reading integer data, appending text, sampling a
random line, and listing directory entries. All paths are confined
to the served root directory.`,
		Example: `fileops-mcp ~/data --filters filters.yaml`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, filterPath)
		},
	}
	cmd.Flags().StringVar(&filterPath, "filters", "", "YAML file with default filter patterns")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string, filterPath string) error {
	var rootPath string
	if len(args) > 0 {
		rootPath = args[0]
	} else {
		var err error
		rootPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	var filters filterspec.Spec
	if filterPath != "" {
		var err error
		filters, err = filterspec.Load(filterPath)
		if err != nil {
			return err
		}
	}

	fileSystem = filesystem.New(rootPath, filters)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "fileops-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

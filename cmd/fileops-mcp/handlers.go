package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/textkit/fileops-mcp/internal/fileops"
	"github.com/textkit/fileops-mcp/internal/filterspec"
)

func handleReadLines(ctx context.Context, req *mcp.CallToolRequest, input ReadLinesInput) (*mcp.CallToolResult, ReadLinesOutput, error) {
	path := strings.TrimSpace(input.Path)

	filters := filterspec.Spec{}
	if len(input.SkipPrefixes) > 0 {
		filters[filterspec.SkipPrefix] = input.SkipPrefixes
	}
	if len(input.SkipContaining) > 0 {
		filters[filterspec.SkipContains] = input.SkipContaining
	}

	lines, err := fileSystem.LoadLines(path, fileops.LoadParams{
		Filters:   filters,
		Separator: input.Separator,
		KeepEmpty: input.KeepEmpty,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadLinesOutput{}, err
	}

	return nil, ReadLinesOutput{Lines: lines, Count: len(lines)}, nil
}

func handleReadInts(ctx context.Context, req *mcp.CallToolRequest, input ReadIntsInput) (*mcp.CallToolResult, ReadIntsOutput, error) {
	path := strings.TrimSpace(input.Path)

	values, err := fileSystem.LoadInts(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadIntsOutput{}, err
	}

	return nil, ReadIntsOutput{Values: values, Count: len(values)}, nil
}

func handleAppend(ctx context.Context, req *mcp.CallToolRequest, input AppendInput) (*mcp.CallToolResult, AppendOutput, error) {
	path := strings.TrimSpace(input.Path)

	if err := fileSystem.Append(path, input.Text, !input.RequireExisting); err != nil {
		return &mcp.CallToolResult{IsError: true}, AppendOutput{Success: false, Path: path}, err
	}

	return nil, AppendOutput{Success: true, Path: path}, nil
}

func handleRandomLine(ctx context.Context, req *mcp.CallToolRequest, input RandomLineInput) (*mcp.CallToolResult, RandomLineOutput, error) {
	path := strings.TrimSpace(input.Path)

	line, err := fileSystem.RandomLine(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RandomLineOutput{}, err
	}

	return nil, RandomLineOutput{Line: line}, nil
}

func handleListFiles(ctx context.Context, req *mcp.CallToolRequest, input ListFilesInput) (*mcp.CallToolResult, ListFilesOutput, error) {
	path := strings.TrimSpace(input.Path)

	filters := filterspec.Spec{}
	if len(input.TargetExtensions) > 0 {
		filters[filterspec.TargetExtensions] = input.TargetExtensions
	}
	if len(input.ExcludeExtensions) > 0 {
		filters[filterspec.ExcludeExtensions] = input.ExcludeExtensions
	}
	if len(input.ExcludeFiles) > 0 {
		filters[filterspec.ExcludeFiles] = input.ExcludeFiles
	}

	files, err := fileSystem.ListFiles(path, filters)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListFilesOutput{}, err
	}

	return nil, ListFilesOutput{Files: files, Count: len(files)}, nil
}

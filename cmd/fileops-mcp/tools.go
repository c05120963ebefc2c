package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ReadLinesInput contains parameters for reading a file as lines.
	ReadLinesInput struct {
		Path           string   `json:"path" jsonschema:"Path to the file relative to the served root"`
		Separator      string   `json:"separator,omitempty" jsonschema:"Separator lines are split on (default: newline)"`
		KeepEmpty      bool     `json:"keepEmpty,omitempty" jsonschema:"Keep empty lines instead of dropping them (default: false)"`
		SkipPrefixes   []string `json:"skipPrefixes,omitempty" jsonschema:"Drop lines starting with any of these patterns"`
		SkipContaining []string `json:"skipContaining,omitempty" jsonschema:"Drop lines containing any of these patterns"`
	}

	// ReadLinesOutput contains the surviving lines of a file.
	ReadLinesOutput struct {
		Lines []string `json:"lines"`
		Count int      `json:"count"`
	}

	// ReadIntsInput contains parameters for reading a file of integers.
	ReadIntsInput struct {
		Path string `json:"path" jsonschema:"Path to the file relative to the served root"`
	}

	// ReadIntsOutput contains the parsed integers of a file.
	ReadIntsOutput struct {
		Values []int `json:"values"`
		Count  int   `json:"count"`
	}

	// AppendInput contains parameters for appending text to a file.
	AppendInput struct {
		Path            string `json:"path" jsonschema:"Path to the file relative to the served root"`
		Text            string `json:"text" jsonschema:"Text appended verbatim, no separators added"`
		RequireExisting bool   `json:"requireExisting,omitempty" jsonschema:"Fail instead of creating the file when it is missing (default: false)"`
	}

	// AppendOutput contains the result of appending to a file.
	AppendOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}

	// RandomLineInput contains parameters for sampling a random line.
	RandomLineInput struct {
		Path string `json:"path" jsonschema:"Path to the file relative to the served root"`
	}

	// RandomLineOutput contains the sampled line.
	RandomLineOutput struct {
		Line string `json:"line"`
	}

	// ListFilesInput contains parameters for listing directory entries.
	ListFilesInput struct {
		Path              string   `json:"path,omitempty" jsonschema:"Directory path relative to the served root (default: the root)"`
		TargetExtensions  []string `json:"targetExtensions,omitempty" jsonschema:"Keep only files with one of these extensions, leading dot included"`
		ExcludeExtensions []string `json:"excludeExtensions,omitempty" jsonschema:"Drop files with one of these extensions"`
		ExcludeFiles      []string `json:"excludeFiles,omitempty" jsonschema:"Drop files whose base name matches exactly"`
	}

	// ListFilesOutput contains the matching file base names.
	ListFilesOutput struct {
		Files []string `json:"files"`
		Count int      `json:"count"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_lines",
		Description: "Read a text file as an ordered list of lines. Supports a custom separator, keeping empty lines, and skip filters by prefix or substring.",
	}, handleReadLines)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_ints",
		Description: "Read a file of whitespace or newline separated base-10 integers. Fails on the first malformed token.",
	}, handleReadInts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_file",
		Description: "Append text verbatim to a file, creating it unless requireExisting=true.",
	}, handleAppend)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "random_line",
		Description: "Pick one line uniformly at random from a file without loading it entirely.",
	}, handleRandomLine)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List the regular files directly inside a directory, filtered by target extensions, excluded extensions, and excluded file names. Subdirectories are not listed or descended into.",
	}, handleListFiles)
}

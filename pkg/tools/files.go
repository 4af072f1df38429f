package tools

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hupe1980/agentmesh/core"
	"github.com/hupe1980/agentmesh/tool"
)

// The file tools give agents a virtual filesystem scoped to the session. Files
// live in the agent library's artifact store, never on disk, and are shared by
// every agent in the session.

// NewWriteFileTool returns a tool that writes a virtual file.
func NewWriteFileTool() tool.Tool {
	return tool.NewFunctionTool(
		"write_file",
		"Write content to a file in the session workspace. Overwrites any existing file with the same name.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "File name, e.g. notes.md",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Full file content",
				},
			},
			"required": []string{"path", "content"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			path, _ := args["path"].(string)
			content, _ := args["content"].(string)
			if strings.TrimSpace(path) == "" {
				return nil, errors.New("path is required")
			}
			if err := tc.SaveArtifact(path, []byte(content)); err != nil {
				return nil, errors.Wrapf(err, "write %s", path)
			}
			return fmt.Sprintf("Wrote %d bytes to %s", len(content), path), nil
		},
	)
}

// NewReadFileTool returns a tool that reads a virtual file.
func NewReadFileTool() tool.Tool {
	return tool.NewFunctionTool(
		"read_file",
		"Read a file from the session workspace.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "File name to read",
				},
			},
			"required": []string{"path"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			path, _ := args["path"].(string)
			if strings.TrimSpace(path) == "" {
				return nil, errors.New("path is required")
			}
			data, err := tc.LoadArtifact(path)
			if err != nil {
				return nil, errors.Wrapf(err, "read %s", path)
			}
			return string(data), nil
		},
	)
}

// NewListFilesTool returns a tool that lists the session workspace.
func NewListFilesTool() tool.Tool {
	return tool.NewFunctionTool(
		"ls",
		"List the files in the session workspace.",
		map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		func(tc *core.ToolContext, _ map[string]any) (any, error) {
			names, err := tc.ListArtifacts()
			if err != nil {
				return nil, errors.Wrap(err, "list files")
			}
			if len(names) == 0 {
				return "The workspace is empty.", nil
			}
			return strings.Join(names, "\n"), nil
		},
	)
}

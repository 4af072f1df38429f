package tools

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hupe1980/agentmesh/core"
	"github.com/hupe1980/agentmesh/tool"
)

// PlanStateKey is the session state key holding the active todo list. The
// coordinator's instruction provider reads it back on every model turn.
const PlanStateKey = "todos"

// NewWriteTodosTool returns the planning tool. Calling it replaces the whole
// todo list, which keeps the schema trivial for the model.
func NewWriteTodosTool() tool.Tool {
	return tool.NewFunctionTool(
		"write_todos",
		"Replace the current task plan with a new list of todo items. Call this first to plan, and again whenever a step completes or the plan changes.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"todos": map[string]any{
					"type":        "array",
					"description": "Ordered plan steps, done steps prefixed with [x]",
					"items":       map[string]any{"type": "string"},
				},
			},
			"required": []string{"todos"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			todos, err := todoList(args["todos"])
			if err != nil {
				return nil, err
			}
			tc.SetState(PlanStateKey, todos)
			return fmt.Sprintf("Plan updated (%d items).", len(todos)), nil
		},
	)
}

// todoList normalizes the JSON array argument into a string slice.
func todoList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Errorf("todo item must be a string, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("todos must be an array of strings")
	}
}

// FormatPlan renders the stored plan value as a numbered checklist, or an
// empty string when no plan exists yet.
func FormatPlan(value any) string {
	var todos []string
	switch v := value.(type) {
	case []string:
		todos = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				todos = append(todos, s)
			}
		}
	}
	if len(todos) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Current plan:\n")
	for i, todo := range todos {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, todo)
	}
	return sb.String()
}

// PlanFromRunContext reads the rendered plan for instruction injection.
func PlanFromRunContext(rc *core.RunContext) string {
	value, ok := rc.GetState(PlanStateKey)
	if !ok {
		return ""
	}
	return FormatPlan(value)
}

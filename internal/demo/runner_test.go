package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentmesh/core"

	"deepagents_demo/pkg/ui"
)

func TestNewUserText(t *testing.T) {
	content := NewUserText("hello")
	assert.Equal(t, "user", content.Role)
	require.Len(t, content.Parts, 1)
	assert.Equal(t, core.TextPart{Text: "hello"}, content.Parts[0])
}

func TestEventText(t *testing.T) {
	ev := core.Event{Content: &core.Content{Role: "assistant", Parts: []core.Part{
		core.TextPart{Text: "part one "},
		core.FunctionCallPart{FunctionCall: core.FunctionCall{Name: "web_search"}},
		core.TextPart{Text: "part two"},
	}}}
	assert.Equal(t, "part one part two", eventText(ev))

	assert.Equal(t, "", eventText(core.Event{}))
}

func TestRenderEvent(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{console: ui.NewConsole(&buf)}

	r.renderEvent(core.Event{Author: "Researcher", Content: &core.Content{Parts: []core.Part{
		core.TextPart{Text: "the answer"},
		core.FunctionCallPart{FunctionCall: core.FunctionCall{Name: "web_search", Arguments: `{"query":"golang"}`}},
		core.FunctionResponsePart{FunctionResponse: core.FunctionResponse{Name: "web_search"}},
		core.FunctionResponsePart{FunctionResponse: core.FunctionResponse{Name: "read_file", Error: "not found"}},
	}}})

	out := buf.String()
	assert.Contains(t, out, "[Researcher]")
	assert.Contains(t, out, "the answer")
	assert.Contains(t, out, "web_search")
	assert.Contains(t, out, "not found")

	// Control events carry no content and render nothing.
	buf.Reset()
	r.renderEvent(core.Event{Author: "system"})
	assert.Empty(t, buf.String())
}

func TestTruncateArgs(t *testing.T) {
	assert.Equal(t, "short", truncateArgs("short"))
	assert.Equal(t, "a b", truncateArgs("a\nb"))

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateArgs(string(long))
	assert.Len(t, []rune(got), 81)
}

func TestRunnerSessionIdentity(t *testing.T) {
	r1 := NewRunner()
	r2 := NewRunner()
	assert.NotEmpty(t, r1.SessionID())
	assert.NotEqual(t, r1.SessionID(), r2.SessionID())
}

func TestFilesEmptyWorkspace(t *testing.T) {
	r := NewRunner()
	files, err := r.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

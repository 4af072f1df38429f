package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderBannerWidth(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Header("Demo 1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], strings.Repeat("=", 60))
	assert.Contains(t, lines[2], strings.Repeat("=", 60))
	assert.Contains(t, lines[1], "Demo 1")
}

func TestQuietSuppressesInfoNotErrors(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Quiet(true)

	c.Header("hidden")
	c.Successf("hidden")
	c.Infof("hidden")
	c.Dimf("hidden")
	assert.Empty(t, buf.String())

	c.Errorf("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestPreviewTruncation(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))
	assert.Equal(t, "first line", Preview("first line\nsecond line"))

	long := strings.Repeat("a", 60)
	got := Preview(long)
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)
}

func TestFileTreeSortedWithPreviews(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.FileTree(map[string]string{
		"zeta.md":  "last file",
		"alpha.md": "first file",
	})

	out := buf.String()
	assert.Contains(t, out, "Virtual File System")
	assert.Less(t, strings.Index(out, "alpha.md"), strings.Index(out, "zeta.md"))
	assert.Contains(t, out, "first file")
	assert.Contains(t, out, "└── zeta.md")
}

func TestFileTreeEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).FileTree(nil)
	assert.Contains(t, buf.String(), "workspace empty")
}

func TestAgentSays(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).AgentSays("Researcher", "found it")
	assert.Contains(t, buf.String(), "[Researcher]")
	assert.Contains(t, buf.String(), "found it")
}

package dial

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepagents_demo/internal/config"
)

func testConfig(endpoint string) config.Config {
	return config.Config{
		DIALAPIKey:     "test-key",
		DIALAPIURL:     endpoint,
		DIALAPIVersion: "2024-02-15-preview",
		ModelName:      "gpt-4",
		Temperature:    0.0,
		MaxTokens:      256,
		Timeout:        10 * time.Second,
	}
}

const completionBody = `{
	"id": "cmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "hello from dial"}, "finish_reason": "stop"}
	],
	"usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
}`

type recordedRequest struct {
	path       string
	apiVersion string
	apiKey     string
	body       map[string]any
}

func newGatewayStub(t *testing.T, rec *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.apiVersion = r.URL.Query().Get("api-version")
		rec.apiKey = r.Header.Get("Api-Key")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &rec.body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody)
	}))
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(config.Config{DIALAPIURL: "https://dial.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")

	_, err = New(config.Config{DIALAPIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestGenerateRoundTrip(t *testing.T) {
	var rec recordedRequest
	srv := newGatewayStub(t, &rec)
	defer srv.Close()

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), []Message{
		NewSystemMessage("You are terse."),
		NewUserMessage("Say hello."),
	})
	require.NoError(t, err)

	assert.Equal(t, "hello from dial", resp.Content)
	assert.Equal(t, "gpt-4", resp.Model)
	assert.Equal(t, int64(12), resp.Usage.PromptTokens)
	assert.Equal(t, int64(7), resp.Usage.CompletionTokens)
	assert.Equal(t, int64(19), resp.Usage.TotalTokens)

	// Azure dialect: deployment-scoped path, api-version query, api-key header.
	assert.True(t, strings.Contains(rec.path, "gpt-4"), "expected deployment in path, got %s", rec.path)
	assert.Equal(t, "2024-02-15-preview", rec.apiVersion)
	assert.Equal(t, "test-key", rec.apiKey)
	assert.Equal(t, float64(256), rec.body["max_tokens"])
	assert.Equal(t, float64(0), rec.body["temperature"])
}

func TestGenerateTemperatureOverride(t *testing.T) {
	var rec recordedRequest
	srv := newGatewayStub(t, &rec)
	defer srv.Close()

	client, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(),
		[]Message{NewUserMessage("hi")},
		WithTemperature(0.9),
	)
	require.NoError(t, err)
	assert.Equal(t, 0.9, rec.body["temperature"])
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	client, err := New(testConfig("https://dial.example.com"))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), nil)
	require.Error(t, err)
}

func TestBuildMessagesRoleMapping(t *testing.T) {
	msgs := buildMessages([]Message{
		{Role: RoleSystem, Content: "s"},
		{Role: RoleUser, Content: "u"},
		{Role: RoleAssistant, Content: "a"},
		{Role: Role("tool"), Content: "x"},
	})
	require.Len(t, msgs, 4)
	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)
	assert.NotNil(t, msgs[2].OfAssistant)
	assert.NotNil(t, msgs[3].OfUser, "unknown roles fall back to user")
}

func TestModelUsesConfiguredDeployment(t *testing.T) {
	client, err := New(testConfig("https://dial.example.com"))
	require.NoError(t, err)

	m := client.Model()
	require.NotNil(t, m)
	assert.Equal(t, "gpt-4", m.Info().Name)
}

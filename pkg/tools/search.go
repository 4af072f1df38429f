// Package tools provides the demo tool set exposed to agents: web search,
// artifact-backed scratch files, and plan management.
package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/hupe1980/agentmesh/core"
	"github.com/hupe1980/agentmesh/tool"
)

const (
	defaultSearchEndpoint   = "https://html.duckduckgo.com/html/"
	defaultSearchMaxResults = 5
	searchUserAgent         = "Mozilla/5.0 (compatible; deepagents-demo/1.0)"
)

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

// SearchClient queries the DuckDuckGo HTML endpoint. No API key needed.
type SearchClient struct {
	Endpoint   string
	MaxResults int
	HTTPClient *http.Client
}

// NewSearchClient creates a search client with default endpoint and limits.
func NewSearchClient(optFns ...func(*SearchClient)) *SearchClient {
	c := &SearchClient{
		Endpoint:   defaultSearchEndpoint,
		MaxResults: defaultSearchMaxResults,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// WithMaxResults caps the number of returned results.
func WithMaxResults(n int) func(*SearchClient) {
	return func(c *SearchClient) {
		if n > 0 {
			c.MaxResults = n
		}
	}
}

// Search performs a query and returns up to MaxResults parsed hits.
func (c *SearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search: query is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, errors.Wrap(err, "search: build request")
	}
	req.Header.Set("User-Agent", searchUserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("search: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "search: parse response")
	}

	var results []SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find(".result__title a")
		if link.Length() == 0 {
			link = sel.Find(".result__a")
		}
		if link.Length() == 0 {
			return true
		}
		href, _ := link.Attr("href")
		results = append(results, SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").Text()),
			URL:     href,
		})
		return len(results) < c.MaxResults
	})

	return results, nil
}

// FormatResults renders hits as the numbered plain-text block shown to models.
func FormatResults(query string, results []SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No search results found for: %s", query)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for '%s':\n\n", query)
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		body := r.Snippet
		if body == "" {
			body = "No description"
		}
		source := r.URL
		if source == "" {
			source = "No URL"
		}
		fmt.Fprintf(&sb, "%d. %s\n   %s\n   Source: %s\n\n", i+1, title, body, source)
	}
	return sb.String()
}

// NewWebSearchTool exposes the search client as an agent tool. Search failures
// are reported back to the model as text so the run can continue.
func NewWebSearchTool(client *SearchClient) tool.Tool {
	return tool.NewFunctionTool(
		"web_search",
		"Search the web for current information using DuckDuckGo.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query",
				},
			},
			"required": []string{"query"},
		},
		func(tc *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)
			if strings.TrimSpace(query) == "" {
				return nil, errors.New("query is required")
			}
			results, err := client.Search(tc.Context(), query)
			if err != nil {
				return fmt.Sprintf("Error performing web search: %v", err), nil
			}
			return FormatResults(query, results), nil
		},
	)
}

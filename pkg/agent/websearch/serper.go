package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"math-agent-be/pkg/agent/evidence"
)

const serperEndpoint = "https://google.serper.dev/search"

// SearchClient performs a web search and returns raw, unranked results.
type SearchClient interface {
	Search(ctx context.Context, query string, limit int) ([]evidence.WebResult, error)
}

// SerperClient talks to the Serper Google search API.
type SerperClient struct {
	ApiKey string
	Client *http.Client
}

var _ SearchClient = &SerperClient{}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		ApiKey: apiKey,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num,omitempty"`
}

type serperOrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type serperResponse struct {
	Organic []serperOrganicResult `json:"organic"`
}

func (c *SerperClient) Search(ctx context.Context, query string, limit int) ([]evidence.WebResult, error) {
	body, err := json.Marshal(serperRequest{Q: query, Num: limit})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", serperEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from serper response, code %d, body %s", res.StatusCode, string(resBytes))
	}

	var parsed serperResponse
	if err := json.Unmarshal(resBytes, &parsed); err != nil {
		return nil, err
	}

	results := make([]evidence.WebResult, 0, len(parsed.Organic))
	for _, organic := range parsed.Organic {
		if organic.Link == "" {
			continue
		}
		results = append(results, evidence.WebResult{
			Title:   organic.Title,
			URL:     organic.Link,
			Snippet: organic.Snippet,
		})
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

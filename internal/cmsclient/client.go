package cmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neuroscale/neuroscale-site/internal/logger"
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// Client talks to the content service's query endpoint on behalf of the
// renderer. Reads fail open: any transport error, non-2xx status or mangled
// body degrades to empty collections so the site keeps serving from
// fallbacks. Writes (lead creation) surface their errors.
type Client struct {
	log      *logger.Logger
	endpoint string
	token    string
	http     *http.Client
}

func New(log *logger.Logger, endpoint, token string) *Client {
	return &Client{
		log:      log.With("service", "CMSClient"),
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

const homeQuery = `
query HomeData {
  titles { id name details title description }
  contacts { id name value }
  abouts { id title text }
  statistics { id title text }
  possibilities { id title text points { id name } }
  stages { id title text happening { id name } }
  cases { id direction title text solution effect }
  faqs { id question answer }
}`

const documentQuery = `
query Document($slug: String!) {
  document(slug: $slug) { id slug title description content updatedAt }
}`

const createClientMutation = `
mutation CreateClient($data: ClientCreateInput!) {
  createClient(data: $data) { id name phone question contactMethod createdAt }
}`

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, query string, variables map[string]interface{}, data interface{}) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("Failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("Failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("Content service unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("Failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("Content service returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("Failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("Content service error: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("Content service returned no data")
	}
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return fmt.Errorf("Failed to decode data: %w", err)
	}
	return nil
}

// FetchHome pulls the whole landing aggregate in one round trip. On any
// failure it logs and returns the empty aggregate.
func (c *Client) FetchHome(ctx context.Context) types.HomeData {
	var data types.HomeData
	if err := c.post(ctx, homeQuery, nil, &data); err != nil {
		c.log.Warn("Home fetch failed, serving empty aggregate", "error", err)
		return types.EmptyHomeData()
	}
	// Normalize nil lists so downstream fallback checks stay uniform.
	empty := types.EmptyHomeData()
	if data.Titles == nil {
		data.Titles = empty.Titles
	}
	if data.Contacts == nil {
		data.Contacts = empty.Contacts
	}
	if data.Abouts == nil {
		data.Abouts = empty.Abouts
	}
	if data.Statistics == nil {
		data.Statistics = empty.Statistics
	}
	if data.Possibilities == nil {
		data.Possibilities = empty.Possibilities
	}
	if data.Stages == nil {
		data.Stages = empty.Stages
	}
	if data.Cases == nil {
		data.Cases = empty.Cases
	}
	if data.Faqs == nil {
		data.Faqs = empty.Faqs
	}
	return data
}

// FetchDocument loads one legal page by slug. Missing documents and fetch
// failures both come back nil; the caller decides which fallback to render.
func (c *Client) FetchDocument(ctx context.Context, slug string) *types.Document {
	var data struct {
		Document *types.Document `json:"document"`
	}
	if err := c.post(ctx, documentQuery, map[string]interface{}{"slug": slug}, &data); err != nil {
		c.log.Warn("Document fetch failed", "slug", slug, "error", err)
		return nil
	}
	return data.Document
}

// CreateClient persists a lead through the content service. Unlike reads
// this propagates errors: the form handler needs to know persistence failed.
func (c *Client) CreateClient(ctx context.Context, lead types.Client) (*types.Client, error) {
	input := map[string]interface{}{
		"name":  lead.Name,
		"phone": lead.Phone,
	}
	if lead.Question != "" {
		input["question"] = lead.Question
	}
	if lead.ContactMethod != "" {
		input["contactMethod"] = lead.ContactMethod
	}

	var data struct {
		CreateClient *types.Client `json:"createClient"`
	}
	if err := c.post(ctx, createClientMutation, map[string]interface{}{"data": input}, &data); err != nil {
		return nil, err
	}
	if data.CreateClient == nil {
		return nil, fmt.Errorf("Content service returned no client")
	}
	return data.CreateClient, nil
}

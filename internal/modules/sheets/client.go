package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

// Client reads the catalog spreadsheet through the Google Sheets REST
// API using API-key auth. It implements Reader.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	apiKey     string
}

func NewClient(sheetID, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    defaultBaseURL,
		sheetID:    sheetID,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL points the client at an alternate endpoint.
// Used by tests to target a local server.
func NewClientWithBaseURL(sheetID, apiKey, baseURL string, httpClient *http.Client) *Client {
	c := NewClient(sheetID, apiKey)
	c.baseURL = baseURL
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

func (c *Client) SheetNames(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s?fields=sheets.properties.title&key=%s",
		c.baseURL, c.sheetID, url.QueryEscape(c.apiKey))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, title := range gjson.GetBytes(body, "sheets.#.properties.title").Array() {
		names = append(names, title.String())
	}
	return names, nil
}

func (c *Client) FetchProducts(ctx context.Context, category string) ([]Product, error) {
	// Data rows only; row 1 holds headers.
	rangeRef := url.PathEscape(category + "!A2:H")
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?key=%s",
		c.baseURL, c.sheetID, rangeRef, url.QueryEscape(c.apiKey))

	body, err := c.getRange(ctx, endpoint, category)
	if err != nil {
		return nil, err
	}

	products := []Product{}
	gjson.GetBytes(body, "values").ForEach(func(_, row gjson.Result) bool {
		cells := row.Array()
		raw := make([]string, len(cells))
		for i, cell := range cells {
			raw[i] = cell.String()
		}
		products = append(products, productFromRow(raw))
		return true
	})
	return products, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	body, status, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, status)
	}
	return body, nil
}

// getRange treats a 400 as "tab not found": the values endpoint
// rejects a range referencing a missing tab with INVALID_ARGUMENT.
func (c *Client) getRange(ctx context.Context, endpoint, category string) ([]byte, error) {
	body, status, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, status)
	}
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

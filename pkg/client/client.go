package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbodonnell/civboard/pkg/api/handlers"
	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/messages"
)

// Client talks to a board server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type NewClientOptions struct {
	// BaseURL is the server root, for example http://localhost:9090
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(opts NewClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) ListBoards(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := c.doJSON(ctx, http.MethodGet, "/boards", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateBoard creates a default board. A size of 0 leaves the choice to the
// server.
func (c *Client) CreateBoard(ctx context.Context, size int) (string, error) {
	var body interface{}
	if size != 0 {
		body = map[string]int{"size": size}
	}
	created := struct {
		ID string `json:"id"`
	}{}
	if err := c.doJSON(ctx, http.MethodPost, "/boards", body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *Client) ImportBoard(ctx context.Context, b *board.Board) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/boards/import", "text/plain", strings.NewReader(b.String()))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	created := struct {
		ID string `json:"id"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}
	return created.ID, nil
}

// ExportBoard fetches the text encoding of a board and parses it.
func (c *Client) ExportBoard(ctx context.Context, id string) (*board.Board, error) {
	resp, err := c.do(ctx, http.MethodGet, "/boards/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %v", err)
	}
	return board.ParseBoard(string(text))
}

// Snapshot fetches the compressed binary encoding of a board and decodes it.
func (c *Client) Snapshot(ctx context.Context, id string) (*board.Board, error) {
	resp, err := c.do(ctx, http.MethodGet, "/boards/"+url.PathEscape(id)+"/snapshot", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %v", err)
	}
	return messages.DeserializeBoard(data)
}

func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/boards/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Tile(ctx context.Context, id string, q, r int) (handlers.TileResponse, error) {
	tile := handlers.TileResponse{}
	err := c.doJSON(ctx, http.MethodGet, tilePath(id, q, r, ""), nil, &tile)
	return tile, err
}

func (c *Client) SetTerrain(ctx context.Context, id string, q, r int, terrain types.Terrain) (handlers.TileResponse, error) {
	return c.updateTile(ctx, http.MethodPut, tilePath(id, q, r, "/terrain"), map[string]interface{}{"terrain": terrain})
}

func (c *Client) FlipRiver(ctx context.Context, id string, q, r int, edge types.TileEdge) (handlers.TileResponse, error) {
	return c.updateTile(ctx, http.MethodPost, tilePath(id, q, r, "/rivers/"+edge.String()), nil)
}

func (c *Client) PlaceImprovement(ctx context.Context, id string, q, r int, color types.CityColor, improvement types.TileImprovement) (handlers.TileResponse, error) {
	return c.updateTile(ctx, http.MethodPut, tilePath(id, q, r, "/improvement"), map[string]interface{}{
		"color":       color,
		"improvement": improvement,
	})
}

func (c *Client) updateTile(ctx context.Context, method, path string, body interface{}) (handlers.TileResponse, error) {
	tile := handlers.TileResponse{}
	err := c.doJSON(ctx, method, path, body, &tile)
	return tile, err
}

func tilePath(id string, q, r int, suffix string) string {
	return fmt.Sprintf("/boards/%s/tiles/%d/%d%s", url.PathEscape(id), q, r, suffix)
}

// doJSON sends body as JSON when it is not nil and decodes the response into
// out when out is not nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %v", err)
		}
		reader = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, contentType, reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	return resp, nil
}

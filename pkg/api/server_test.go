package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cbodonnell/civboard/pkg/api/handlers"
	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/messages"
	"github.com/cbodonnell/civboard/pkg/queue"
	"github.com/cbodonnell/civboard/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *state.InMemoryBoardManager) {
	t.Helper()
	manager := state.NewInMemoryBoardManager(queue.NewInMemoryQueue[string](100))
	server := httptest.NewServer(NewHandler(manager, "*"))
	t.Cleanup(server.Close)
	return server, manager
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createBoard(t *testing.T, server *httptest.Server, body string) string {
	t.Helper()
	resp := do(t, http.MethodPost, server.URL+"/boards", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := struct {
		ID string `json:"id"`
	}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created.ID
}

func decodeTile(t *testing.T, resp *http.Response) handlers.TileResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tile := handlers.TileResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tile))
	return tile
}

func TestCreateAndListBoards(t *testing.T) {
	server, manager := newTestServer(t)

	defaultID := createBoard(t, server, "")
	smallID := createBoard(t, server, `{"size": 4}`)

	resp := do(t, http.MethodGet, server.URL+"/boards", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ids := []string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	assert.ElementsMatch(t, []string{defaultID, smallID}, ids)

	ctx := context.Background()
	snapshot, err := manager.Snapshot(ctx, defaultID)
	require.NoError(t, err)
	assert.Equal(t, 10, snapshot.Size())
	snapshot, err = manager.Snapshot(ctx, smallID)
	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.Size())

	resp = do(t, http.MethodPost, server.URL+"/boards", `{"size": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, http.MethodPost, server.URL+"/boards", `{"size":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTileEditing(t *testing.T) {
	server, _ := newTestServer(t)
	id := createBoard(t, server, `{"size": 3}`)
	tileURL := server.URL + "/boards/" + id + "/tiles/0/0"

	tile := decodeTile(t, do(t, http.MethodGet, tileURL, ""))
	assert.Equal(t, board.Coord{Q: 0, R: 0}, tile.Coord)
	assert.Equal(t, board.Tile{}, tile.Tile)

	tile = decodeTile(t, do(t, http.MethodPut, tileURL+"/terrain", `{"terrain": "plains"}`))
	assert.Equal(t, types.TerrainPlains, tile.Terrain)

	tile = decodeTile(t, do(t, http.MethodPut, tileURL+"/hills", `{"hills": true}`))
	assert.True(t, tile.Hills)

	tile = decodeTile(t, do(t, http.MethodPut, tileURL+"/feature", `{"feature": "forest"}`))
	assert.Equal(t, types.FeatureForest, tile.Feature)

	tile = decodeTile(t, do(t, http.MethodPost, tileURL+"/rivers/east", ""))
	assert.True(t, tile.Rivers[types.EdgeEast])

	tile = decodeTile(t, do(t, http.MethodPut, tileURL+"/improvement", `{"color": "red", "improvement": "farm"}`))
	assert.Equal(t, types.ColorRed, tile.Color)
	assert.Equal(t, types.ImprovementFarm, tile.Improvement)

	tile = decodeTile(t, do(t, http.MethodDelete, tileURL+"/improvement", ""))
	assert.False(t, tile.HasImprovement())

	tile = decodeTile(t, do(t, http.MethodDelete, tileURL+"/feature", ""))
	assert.False(t, tile.HasFeature())
}

func TestErrorStatuses(t *testing.T) {
	server, _ := newTestServer(t)
	id := createBoard(t, server, `{"size": 3}`)
	boardPath := "/boards/" + id

	resp := do(t, http.MethodPut, server.URL+boardPath+"/tiles/1/0/hills", `{"hills": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "unknown board", method: http.MethodGet, path: "/boards/missing", want: http.StatusNotFound},
		{name: "unknown board tile", method: http.MethodGet, path: "/boards/missing/tiles/0/0", want: http.StatusNotFound},
		{name: "coordinate off board", method: http.MethodGet, path: boardPath + "/tiles/4/0", want: http.StatusBadRequest},
		{name: "negative coordinate", method: http.MethodGet, path: boardPath + "/tiles/-1/0", want: http.StatusBadRequest},
		{name: "non numeric coordinate", method: http.MethodGet, path: boardPath + "/tiles/a/0", want: http.StatusBadRequest},
		{name: "unknown terrain", method: http.MethodPut, path: boardPath + "/tiles/0/0/terrain", body: `{"terrain": "lava"}`, want: http.StatusBadRequest},
		{name: "water under hills", method: http.MethodPut, path: boardPath + "/tiles/1/0/terrain", body: `{"terrain": "ocean"}`, want: http.StatusBadRequest},
		{name: "feature on wrong terrain", method: http.MethodPut, path: boardPath + "/tiles/0/0/feature", body: `{"feature": "reef"}`, want: http.StatusBadRequest},
		{name: "no feature to remove", method: http.MethodDelete, path: boardPath + "/tiles/0/0/feature", want: http.StatusConflict},
		{name: "no improvement to remove", method: http.MethodDelete, path: boardPath + "/tiles/0/0/improvement", want: http.StatusConflict},
		{name: "unknown edge", method: http.MethodPost, path: boardPath + "/tiles/0/0/rivers/up", want: http.StatusBadRequest},
		{name: "improvement without color", method: http.MethodPut, path: boardPath + "/tiles/0/0/improvement", body: `{"color": "none", "improvement": "mine"}`, want: http.StatusBadRequest},
		{name: "size too small", method: http.MethodPut, path: boardPath + "/size", body: `{"size": 2}`, want: http.StatusBadRequest},
		{name: "import garbage", method: http.MethodPost, path: "/boards/import", body: "not a board", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, server.URL+tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestBoardLifecycle(t *testing.T) {
	server, manager := newTestServer(t)
	ctx := context.Background()

	src, err := board.NewWithSize(3)
	require.NoError(t, err)
	require.NoError(t, src.SetTileTerrain(0, 0, types.TerrainDesert))
	require.NoError(t, src.SetTileFeature(0, 0, types.FeatureOasis))

	resp := do(t, http.MethodPost, server.URL+"/boards/import", src.String())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := struct {
		ID string `json:"id"`
	}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	boardURL := server.URL + "/boards/" + created.ID

	resp = do(t, http.MethodGet, boardURL, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, src.String(), string(text))

	resp = do(t, http.MethodGet, boardURL+"/snapshot", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded, err := messages.DeserializeBoard(data)
	require.NoError(t, err)
	assert.True(t, src.Equal(decoded))

	resp = do(t, http.MethodPut, boardURL+"/size", `{"size": 5}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resized, err := manager.Snapshot(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, resized.Size())
	feature, ok, err := resized.TileFeature(2, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, types.FeatureOasis, feature)

	resp = do(t, http.MethodPost, boardURL+"/reset-tiles", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, http.MethodPost, boardURL+"/reset-size", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	reset, err := manager.Snapshot(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, board.New().Equal(reset))

	resp = do(t, http.MethodDelete, boardURL, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, http.MethodGet, boardURL, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	server, _ := newTestServer(t)

	resp := do(t, http.MethodOptions, server.URL+"/boards", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = do(t, http.MethodGet, server.URL+"/boards", "")
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

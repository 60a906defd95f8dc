package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/board/constants"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/messages"
	"github.com/cbodonnell/civboard/pkg/state"
	"github.com/gorilla/mux"
)

// MaxBodyBytes bounds request bodies, including imported board text.
const MaxBodyBytes = 8 << 20

type createBoardRequest struct {
	Size *int `json:"size"`
}

type boardIDResponse struct {
	ID string `json:"id"`
}

type sizeRequest struct {
	Size int `json:"size"`
}

type terrainRequest struct {
	Terrain types.Terrain `json:"terrain"`
}

type hillsRequest struct {
	Hills bool `json:"hills"`
}

type featureRequest struct {
	Feature types.Feature `json:"feature"`
}

type improvementRequest struct {
	Color       types.CityColor       `json:"color"`
	Improvement types.TileImprovement `json:"improvement"`
}

// TileResponse is the JSON form of a single tile.
type TileResponse struct {
	board.Coord
	board.Tile
}

func HandleListBoards(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, manager.IDs(r.Context()))
	}
}

// HandleCreateBoard creates a default board. The body is optional and may
// carry a size; the default size is used otherwise.
func HandleCreateBoard(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := createBoardRequest{}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		size := constants.DefaultBoardSize
		if req.Size != nil {
			size = *req.Size
		}

		id, err := manager.Create(r.Context(), size)
		if err != nil {
			writeError(w, "create board", err)
			return
		}
		log.Info("Created board %s with size %d", id, size)
		writeJSON(w, http.StatusCreated, boardIDResponse{ID: id})
	}
}

// HandleImportBoard creates a board from its text encoding.
func HandleImportBoard(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		b, err := board.ParseBoard(string(body))
		if err != nil {
			writeError(w, "parse board", err)
			return
		}

		id, err := manager.Import(r.Context(), b)
		if err != nil {
			writeError(w, "import board", err)
			return
		}
		log.Info("Imported board %s with size %d", id, b.Size())
		writeJSON(w, http.StatusCreated, boardIDResponse{ID: id})
	}
}

// HandleGetBoard writes the text encoding of a board.
func HandleGetBoard(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var text string
		err := manager.View(r.Context(), mux.Vars(r)["id"], func(b *board.Board) error {
			text = b.String()
			return nil
		})
		if err != nil {
			writeError(w, "get board", err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := io.WriteString(w, text); err != nil {
			log.Error("Failed to write board: %v", err)
		}
	}
}

// HandleGetSnapshot writes the compressed binary encoding of a board.
func HandleGetSnapshot(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data []byte
		err := manager.View(r.Context(), mux.Vars(r)["id"], func(b *board.Board) error {
			var err error
			data, err = messages.SerializeBoard(b)
			return err
		})
		if err != nil {
			writeError(w, "snapshot board", err)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		if _, err := w.Write(data); err != nil {
			log.Error("Failed to write snapshot: %v", err)
		}
	}
}

func HandleDeleteBoard(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := manager.Delete(r.Context(), id); err != nil {
			writeError(w, "delete board", err)
			return
		}
		log.Info("Deleted board %s", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleSetSize(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := sizeRequest{}
		if !decodeJSON(w, r, &req) {
			return
		}
		updateBoard(w, r, manager, "resize board", func(b *board.Board) error {
			return b.SetSize(req.Size)
		})
	}
}

func HandleResetTiles(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateBoard(w, r, manager, "reset tiles", func(b *board.Board) error {
			b.ResetTiles()
			return nil
		})
	}
}

func HandleResetSize(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateBoard(w, r, manager, "reset size", func(b *board.Board) error {
			b.ResetSize()
			return nil
		})
	}
}

func HandleGetTile(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := parseCoord(w, r)
		if !ok {
			return
		}
		var tile board.Tile
		err := manager.View(r.Context(), mux.Vars(r)["id"], func(b *board.Board) error {
			var err error
			tile, err = b.Tile(c.Q, c.R)
			return err
		})
		if err != nil {
			writeError(w, "get tile", err)
			return
		}
		writeJSON(w, http.StatusOK, TileResponse{Coord: c, Tile: tile})
	}
}

func HandleSetTerrain(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := terrainRequest{}
		if !decodeJSON(w, r, &req) {
			return
		}
		updateTile(w, r, manager, "set terrain", func(b *board.Board, c board.Coord) error {
			return b.SetTileTerrain(c.Q, c.R, req.Terrain)
		})
	}
}

func HandleSetHills(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := hillsRequest{}
		if !decodeJSON(w, r, &req) {
			return
		}
		updateTile(w, r, manager, "set hills", func(b *board.Board, c board.Coord) error {
			return b.SetTileHills(c.Q, c.R, req.Hills)
		})
	}
}

func HandleSetFeature(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := featureRequest{}
		if !decodeJSON(w, r, &req) {
			return
		}
		updateTile(w, r, manager, "set feature", func(b *board.Board, c board.Coord) error {
			return b.SetTileFeature(c.Q, c.R, req.Feature)
		})
	}
}

func HandleRemoveFeature(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateTile(w, r, manager, "remove feature", func(b *board.Board, c board.Coord) error {
			return b.RemoveTileFeature(c.Q, c.R)
		})
	}
}

func HandleFlipRiver(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		edge, err := types.ParseTileEdge(mux.Vars(r)["edge"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updateTile(w, r, manager, "flip river", func(b *board.Board, c board.Coord) error {
			return b.FlipRiver(c.Q, c.R, edge)
		})
	}
}

func HandlePlaceImprovement(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := improvementRequest{}
		if !decodeJSON(w, r, &req) {
			return
		}
		updateTile(w, r, manager, "place improvement", func(b *board.Board, c board.Coord) error {
			return b.PlaceImprovement(c.Q, c.R, req.Color, req.Improvement)
		})
	}
}

func HandleRemoveImprovement(manager state.BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateTile(w, r, manager, "remove improvement", func(b *board.Board, c board.Coord) error {
			return b.RemoveImprovement(c.Q, c.R)
		})
	}
}

func updateBoard(w http.ResponseWriter, r *http.Request, manager state.BoardManager, action string, fn func(b *board.Board) error) {
	if err := manager.Update(r.Context(), mux.Vars(r)["id"], fn); err != nil {
		writeError(w, action, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateTile applies fn to the addressed tile and responds with the tile as
// it is after the change.
func updateTile(w http.ResponseWriter, r *http.Request, manager state.BoardManager, action string, fn func(b *board.Board, c board.Coord) error) {
	c, ok := parseCoord(w, r)
	if !ok {
		return
	}
	var tile board.Tile
	err := manager.Update(r.Context(), mux.Vars(r)["id"], func(b *board.Board) error {
		if err := fn(b, c); err != nil {
			return err
		}
		var err error
		tile, err = b.Tile(c.Q, c.R)
		return err
	})
	if err != nil {
		writeError(w, action, err)
		return
	}
	writeJSON(w, http.StatusOK, TileResponse{Coord: c, Tile: tile})
}

func parseCoord(w http.ResponseWriter, r *http.Request) (board.Coord, bool) {
	vars := mux.Vars(r)
	q, err := strconv.Atoi(vars["q"])
	if err != nil {
		http.Error(w, "Failed to parse q", http.StatusBadRequest)
		return board.Coord{}, false
	}
	row, err := strconv.Atoi(vars["r"])
	if err != nil {
		http.Error(w, "Failed to parse r", http.StatusBadRequest)
		return board.Coord{}, false
	}
	return board.Coord{Q: q, R: row}, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(v); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response: %v", err)
	}
}

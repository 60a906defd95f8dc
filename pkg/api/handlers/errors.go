package handlers

import (
	"net/http"

	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/state"
)

// writeError maps board and manager errors to HTTP statuses.
func writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case state.IsNotFound(err):
		http.Error(w, "Board not found", http.StatusNotFound)
	case board.IsInvalidArgument(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case board.IsInvalidState(err):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error("Failed to %s: %v", action, err)
		http.Error(w, "Failed to "+action, http.StatusInternalServerError)
	}
}

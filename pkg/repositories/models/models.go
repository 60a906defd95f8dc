package models

// Board is a persisted board. Data holds the board's text encoding.
type Board struct {
	ID        string `json:"id"`
	Size      int    `json:"size"`
	Data      string `json:"-"`
	UpdatedAt int64  `json:"updated_at"`
}

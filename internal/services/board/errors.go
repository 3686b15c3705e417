package board

import "errors"

// Board-related errors
var (
	ErrNoBoards = errors.New("at least one board id is required")
)

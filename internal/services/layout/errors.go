package layout

import "errors"

// Layout-related errors
var (
	// ErrMetadataSetup indicates the metadata board lacks columns the layout
	// records need. It is fatal for load and save and is not retried.
	ErrMetadataSetup = errors.New("metadata board is missing required columns")

	// ErrNoMetadataBoard indicates no metadata board id was configured
	ErrNoMetadataBoard = errors.New("metadata board id is not configured")
)

package layout

import (
	"fmt"

	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

// Outcome summarizes a save
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// LoadReport describes how a layout was rebuilt from its records
type LoadReport struct {
	Sections int `json:"sections"`
	// Skipped lists record ids that could not be decoded
	Skipped []string `json:"skipped,omitempty"`
	// MissingColumns lists column ids referenced by a record but no longer on the board
	MissingColumns []string `json:"missing_columns,omitempty"`
	// DuplicateColumns lists column ids referenced by more than one record
	DuplicateColumns []string `json:"duplicate_columns,omitempty"`
	// Synthesized is set when no record matched and the default section was created
	Synthesized bool `json:"synthesized"`
}

// HasWarnings reports whether the load dropped anything
func (r LoadReport) HasWarnings() bool {
	return len(r.Skipped)+len(r.MissingColumns)+len(r.DuplicateColumns) > 0
}

// SectionResult is the per-section detail of a save
type SectionResult struct {
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Action    string `json:"action"`
	RecordID  string `json:"record_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SaveReport is the count-based summary of a save
type SaveReport struct {
	BoardID      string          `json:"board_id"`
	Created      int             `json:"created"`
	Updated      int             `json:"updated"`
	Failed       int             `json:"failed"`
	Deleted      int             `json:"deleted"`
	DeleteFailed int             `json:"delete_failed"`
	Outcome      Outcome         `json:"outcome"`
	Results      []SectionResult `json:"results"`
}

func (r *SaveReport) settle() {
	failures := r.Failed + r.DeleteFailed
	successes := r.Created + r.Updated + r.Deleted
	switch {
	case failures == 0:
		r.Outcome = OutcomeSuccess
	case successes == 0:
		r.Outcome = OutcomeFailure
	default:
		r.Outcome = OutcomePartial
	}
}

// Summary renders the one-line message shown to the user
func (r SaveReport) Summary() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return fmt.Sprintf("Layout saved: %d created, %d updated, %d deleted", r.Created, r.Updated, r.Deleted)
	case OutcomePartial:
		return fmt.Sprintf("Layout partially saved: %d saved, %d failed, %d deletions failed",
			r.Created+r.Updated, r.Failed, r.DeleteFailed)
	default:
		return fmt.Sprintf("Layout not saved: %d sections failed, %d deletions failed", r.Failed, r.DeleteFailed)
	}
}

// Loaded is a layout rebuilt for a target board together with the board's
// current columns
type Loaded struct {
	Board  models.Board
	Layout *grid.Layout
	Report LoadReport
}

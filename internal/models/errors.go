package models

import "errors"

// Domain-specific validation errors, raised before any remote call
var (
	// ErrMissingBoard indicates no target board was selected
	ErrMissingBoard = errors.New("board id is required")

	// ErrEmptyItemName indicates an item was submitted without a name
	ErrEmptyItemName = errors.New("item name is required")

	// ErrRequiredFieldsMissing indicates required form fields were left blank
	ErrRequiredFieldsMissing = errors.New("required fields are missing")

	// ErrSectionNotFound indicates a section id that is not in the layout
	ErrSectionNotFound = errors.New("section not found")

	// ErrEmptySectionTitle indicates a section rename to a blank title
	ErrEmptySectionTitle = errors.New("section title cannot be empty")

	// ErrInvalidRule indicates a visibility rule with an unknown field or operator
	ErrInvalidRule = errors.New("invalid visibility rule")
)

package models

// ============================================================================
// METADATA BOARD COLUMN TITLES
// ============================================================================

// Column titles on the metadata board. Column ids are resolved from these
// titles at runtime so renamed internal ids do not break lookups.
const (
	MetadataColumnBoardID      = "Board Id"
	MetadataColumnSectionOrder = "Section Order"
	MetadataColumnSections     = "Sections"
	MetadataColumnFields       = "Fields"
	MetadataColumnRules        = "Rules"
)

// ============================================================================
// DEFAULTS
// ============================================================================

// DefaultSectionTitle is the title of the section synthesized for boards
// without a saved layout
const DefaultSectionTitle = "Board Information"

// ItemNameColumnID is the built-in column holding an item's name
const ItemNameColumnID = "name"

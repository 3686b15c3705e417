package models

// Workspace groups boards on the host platform
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Board is a host board as listed by the platform
type Board struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Workspace *Workspace `json:"workspace,omitempty"`
	Columns   []Column   `json:"columns,omitempty"`
}

// WorkspaceName returns the workspace name or an empty string
func (b Board) WorkspaceName() string {
	if b.Workspace == nil {
		return ""
	}
	return b.Workspace.Name
}

// ChildBoard is a board whose connect-boards column points back at a target board
type ChildBoard struct {
	BoardID     string `json:"board_id"`
	BoardName   string `json:"board_name"`
	ColumnID    string `json:"column_id"`
	ColumnTitle string `json:"column_title"`
	Label       string `json:"label"`
}

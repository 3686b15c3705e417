// Package layers provides helpers for positioning overlay layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 3

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// StackTopRight positions blocks from the top-right corner downward, one
// blank line apart. Blocks that would run past the bottom are dropped.
func StackTopRight(blocks []string, screenWidth int, screenHeight int) []*lipgloss.Layer {
	var out []*lipgloss.Layer
	if screenWidth == 0 {
		return out
	}
	row := 0
	for _, b := range blocks {
		h := lipgloss.Height(b)
		if row+h >= screenHeight {
			break
		}
		col := max(screenWidth-lipgloss.Width(b)-1, 0)
		out = append(out, lipgloss.NewLayer(b).X(col).Y(row))
		row += h + 1
	}
	return out
}

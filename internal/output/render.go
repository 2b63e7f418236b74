// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/hubshell/internal/util"
)

// =============================================================================
// KEY/VALUE RENDERING
// =============================================================================

// AppendKeyValue appends a "Key : value" line with the key padded to the
// given display width. Entity detail views use a shared padding so their
// values line up.
func (b *Buffer) AppendKeyValue(key string, value any, padding int) {
	padded := runewidth.FillRight(key, padding)
	b.Append(keyStyle.Render(padded) + ": " + fmt.Sprint(value))
}

// =============================================================================
// TABLE RENDERING
// =============================================================================

// maxCellWidth caps a column so one long description cannot push the
// table off screen.
const maxCellWidth = 48

// AppendTable appends a simple aligned table. Column widths follow the
// widest cell, measured in display width so CJK text lines up, and are
// capped at maxCellWidth with rune-safe truncation.
func (b *Buffer) AppendTable(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	b.Append(renderRow(headers, widths))

	var sep []string
	for _, w := range widths {
		sep = append(sep, strings.Repeat("-", w))
	}
	b.Append(strings.Join(sep, "  "))

	for _, row := range rows {
		b.Append(renderRow(row, widths))
	}
}

func renderRow(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = util.TruncateWidth(cells[i], w)
		}
		parts = append(parts, runewidth.FillRight(cell, w))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

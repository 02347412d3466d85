// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders the text report's headings and summary line. The zero
// value renders plain text.
type styles struct {
	enabled bool
	heading lipgloss.Style
	summary lipgloss.Style
}

// newStyles builds styles bound to w, so color is only emitted when w is
// a terminal that supports it.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{}
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		enabled: true,
		heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		summary: r.NewStyle().
			Foreground(lipgloss.Color("#6EC4F4")),
	}
}

func (s styles) Heading(text string) string {
	if !s.enabled {
		return text
	}
	return s.heading.Render(text)
}

func (s styles) Summary(text string) string {
	if !s.enabled {
		return text
	}
	return s.summary.Render(text)
}

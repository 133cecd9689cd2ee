// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the colours used for step reports.
type Styles struct {
	Heading  lipgloss.Style
	Rotation lipgloss.Style
	Notice   lipgloss.Style
	Muted    lipgloss.Style
	OK       lipgloss.Style
	Bad      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Rotation: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		OK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Bad: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// printer writes report lines, styling them only when colour is enabled so
// that piped output and tests see plain text.
type printer struct {
	w      io.Writer
	color  bool
	styles *Styles
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color, styles: NewStyles()}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) linef(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Heading, s))
}

func (p *printer) rotation(s string) {
	fmt.Fprintln(p.w, "  -> "+p.render(p.styles.Rotation, s))
}

func (p *printer) notice(s string) {
	fmt.Fprintln(p.w, "  -> "+p.render(p.styles.Notice, s))
}

func (p *printer) muted(s string) {
	fmt.Fprintln(p.w, p.render(p.styles.Muted, s))
}

func (p *printer) status(ok bool, s string) {
	if ok {
		fmt.Fprintln(p.w, p.render(p.styles.OK, s))
		return
	}
	fmt.Fprintln(p.w, p.render(p.styles.Bad, s))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render prints lookup results for the command line, either as
// styled text and tables or as indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mikud-go/mikud/models"
)

// Renderer writes results to an output stream.
type Renderer struct {
	out    io.Writer
	asJSON bool
}

// New returns a Renderer writing to out. When asJSON is set every result
// is written as indented JSON instead of styled text.
func New(out io.Writer, asJSON bool) *Renderer {
	return &Renderer{out: out, asJSON: asJSON}
}

// Address prints a single address.
func (r *Renderer) Address(a models.Address) error {
	if r.asJSON {
		return r.writeJSON(a)
	}
	if a.IsZero() {
		return r.write(renderPage("ADDRESS", emptyStyle.Render("no address found")))
	}

	rows := [][2]string{
		{"zip", zipStyle.Render(intOrDash(a.Zip))},
		{"city", withID(a.CityName, a.CityID)},
		{"street", withID(a.StreetName, a.StreetID)},
		{"house", intOrDash(a.HouseNumber)},
		{"pob", intOrDash(a.POB)},
	}
	if a.Message != "" {
		rows = append(rows, [2]string{"message", a.Message})
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row[0]))
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, row[0])))
		b.WriteString("  ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	return r.write(renderPage("ADDRESS", strings.TrimRight(b.String(), "\n")))
}

// Cities prints a city list as a table.
func (r *Renderer) Cities(cities []models.City) error {
	if r.asJSON {
		return r.writeJSON(cities)
	}

	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, intOrDash(c.Zip)})
	}

	return r.write(renderPage(fmt.Sprintf("CITIES (%d)", len(cities)), renderTable([]string{"ID", "NAME", "ZIP"}, rows)))
}

// Streets prints a street list as a table.
func (r *Renderer) Streets(streets []models.Street) error {
	if r.asJSON {
		return r.writeJSON(streets)
	}

	rows := make([][]string, 0, len(streets))
	for _, s := range streets {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.Name, intOrDash(s.CityID)})
	}

	return r.write(renderPage(fmt.Sprintf("STREETS (%d)", len(streets)), renderTable([]string{"ID", "NAME", "CITY ID"}, rows)))
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s+"\n")
	return err
}

func renderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return emptyStyle.Render("nothing found")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}

func renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(data)

	return b.String()
}

func intOrDash(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func withID(name string, id int) string {
	switch {
	case name == "" && id == 0:
		return "-"
	case id == 0:
		return name
	case name == "":
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("%s (#%d)", name, id)
}

// Package report renders extraction results as text, JSON, YAML or a PNG
// swatch strip.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/colorname"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/extractors"
)

// DefaultTop is the number of colors listed by default.
const DefaultTop = 10

// Entry is one ranked color.
type Entry struct {
	Rank    int        `json:"rank" yaml:"rank"`
	Hex     string     `json:"hex" yaml:"hex"`
	Space   string     `json:"space" yaml:"space"`
	Value   []float64  `json:"value" yaml:"value"`
	RGB     [3]float64 `json:"rgb" yaml:"rgb"`
	Count   int        `json:"count" yaml:"count"`
	Percent float64    `json:"percent" yaml:"percent"`
	Name    string     `json:"name" yaml:"name"`
}

// Summary is the reportable view of a registry.
type Summary struct {
	Unique int     `json:"unique" yaml:"unique"`
	Total  int     `json:"total" yaml:"total"`
	Colors []Entry `json:"colors" yaml:"colors"`
}

// NewSummary ranks the registry's colors and keeps the first top of them.
// top <= 0 keeps all.
func NewSummary(r *extractors.Registry, top int) Summary {
	ranked := r.Ranked()
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}

	s := Summary{
		Unique: r.Len(),
		Total:  r.Total(),
		Colors: make([]Entry, len(ranked)),
	}
	for i, u := range ranked {
		s.Colors[i] = Entry{
			Rank:    i + 1,
			Hex:     u.Hex,
			Space:   u.Space.Name(),
			Value:   u.Value,
			RGB:     u.RGB,
			Count:   u.Count,
			Percent: percent(u.Count, s.Total),
			Name:    colorname.Name(u.RGB),
		}
	}
	return s
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write renders s in the named format.
func Write(w io.Writer, format string, s Summary) error {
	switch format {
	case FormatText, "":
		return WriteText(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatYAML:
		return WriteYAML(w, s)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes s as YAML.
func WriteYAML(w io.Writer, s Summary) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// formatValue renders an operand tuple as "(1, 0, 0.5)".
func formatValue(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

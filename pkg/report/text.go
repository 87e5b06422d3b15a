package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText writes a human readable summary followed by the ranked colors.
func WriteText(w io.Writer, s Summary) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Found %d unique colors (from %d total uses)\n", s.Unique, s.Total); err != nil {
		return err
	}
	if len(s.Colors) == 0 {
		return nil
	}
	if _, err := p.Fprintf(w, "Top %d colors:\n", len(s.Colors)); err != nil {
		return err
	}

	valueWidth, nameWidth := 0, 0
	for _, e := range s.Colors {
		valueWidth = max(valueWidth, runewidth.StringWidth(e.Space+" "+formatValue(e.Value)))
		nameWidth = max(nameWidth, runewidth.StringWidth(e.Name))
	}

	for _, e := range s.Colors {
		value := runewidth.FillRight(e.Space+" "+formatValue(e.Value), valueWidth)
		name := runewidth.FillRight(e.Name, nameWidth)
		uses := p.Sprintf("%d uses", e.Count)
		line := fmt.Sprintf("%s: %s  %s - %s (%.1f%%)\n", e.Hex, value, name, uses, e.Percent)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

package content

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
)

var ignoreOffset = cmpopts.IgnoreFields(Match{}, "Offset")

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Match
	}{
		{
			name: "repeated rgb",
			in:   "1 0 0 rg\n1 0 0 rg\n0 1 0 rg\n",
			want: []Match{
				{Space: color.RGB, Operands: []float64{1, 0, 0}},
				{Space: color.RGB, Operands: []float64{1, 0, 0}},
				{Space: color.RGB, Operands: []float64{0, 1, 0}},
			},
		},
		{
			name: "operator prefix of longer keyword",
			in:   "1 0 0 rgb",
			want: nil,
		},
		{
			name: "cmyk",
			in:   "0.1 0.2 0.3 0.4 k\n",
			want: []Match{{Space: color.CMYK, Operands: []float64{0.1, 0.2, 0.3, 0.4}}},
		},
		{
			name: "gray",
			in:   "0.5 g\n",
			want: []Match{{Space: color.Gray, Operands: []float64{0.5}}},
		},
		{
			name: "stroke operators ignored",
			in:   "1 0 0 RG 0 0 0 1 K 0.5 G\n",
			want: nil,
		},
		{
			name: "mixed content grouped by space",
			in:   "q 0.5 g 0 0 1 rg 0 0 0 1 k BT /F1 12 Tf ET 0.25 g Q\n",
			want: []Match{
				{Space: color.RGB, Operands: []float64{0, 0, 1}},
				{Space: color.CMYK, Operands: []float64{0, 0, 0, 1}},
				{Space: color.Gray, Operands: []float64{0.5}},
				{Space: color.Gray, Operands: []float64{0.25}},
			},
		},
		{
			name: "operator at end of buffer",
			in:   "0 g",
			want: nil,
		},
		{
			name: "sign is not part of the operand",
			in:   "-1 0 0 rg\n",
			want: []Match{{Space: color.RGB, Operands: []float64{1, 0, 0}}},
		},
		{
			name: "leading and trailing dots",
			in:   ".5 1. 0 rg\r\n",
			want: []Match{{Space: color.RGB, Operands: []float64{0.5, 1, 0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan([]byte(tt.in))
			if diff := cmp.Diff(tt.want, got, ignoreOffset, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Scan(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestScanOffsets(t *testing.T) {
	got := Scan([]byte("q\n0.5 g\n"))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Offset != 2 {
		t.Errorf("offset = %d, want 2", got[0].Offset)
	}
}

func TestScanFuncParseError(t *testing.T) {
	var (
		matches []Match
		errs    []error
	)
	ScanFunc([]byte("1.2.3 g\n0.5 g\n"), func(m Match) {
		matches = append(matches, m)
	}, func(err error) {
		errs = append(errs, err)
	})

	if len(matches) != 1 || matches[0].Operands[0] != 0.5 {
		t.Errorf("expected only the 0.5 gray match, got %v", matches)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %d", len(errs))
	}

	var pe *ParseError
	if !errors.As(errs[0], &pe) {
		t.Fatalf("expected *ParseError, got %T", errs[0])
	}
	if pe.Token != "1.2.3" || pe.Space != color.Gray || pe.Offset != 0 {
		t.Errorf("unexpected parse error fields: %+v", pe)
	}
	if !errors.Is(errs[0], strconv.ErrSyntax) {
		t.Errorf("expected wrapped strconv.ErrSyntax, got %v", errs[0])
	}
}

func TestScanFuncOverflowDropsMatch(t *testing.T) {
	var (
		matches []Match
		errs    []error
	)
	in := strings.Repeat("9", 400) + " g\n1 g\n"
	ScanFunc([]byte(in), func(m Match) {
		matches = append(matches, m)
	}, func(err error) {
		errs = append(errs, err)
	})

	if len(matches) != 1 || matches[0].Operands[0] != 1 {
		t.Errorf("expected only the 1 gray match, got %v", matches)
	}
	if len(errs) != 1 || !errors.Is(errs[0], strconv.ErrRange) {
		t.Fatalf("expected one strconv.ErrRange error, got %v", errs)
	}
}

func TestScanBareDot(t *testing.T) {
	if got := Scan([]byte(". g\n")); len(got) != 0 {
		t.Errorf("bare dot must not produce a match, got %v", got)
	}
}

func TestMatchColor(t *testing.T) {
	m := Match{Space: color.CMYK, Operands: []float64{1, 0, 0, 0}}
	c, err := m.Color()
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if c.Hex != "#00FFFF" {
		t.Errorf("hex = %s, want #00FFFF", c.Hex)
	}
}

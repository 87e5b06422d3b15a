package content

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
)

// Match is one color operator invocation found in a content stream.
type Match struct {
	Space    color.Space
	Operands []float64
	Offset   int // byte offset of the first operand
}

// Color converts the match into a color.Color.
func (m Match) Color() (color.Color, error) {
	return color.New(m.Space, m.Operands...)
}

// ParseError reports an operand token that is not a decimal number or does
// not fit in a float64.
type ParseError struct {
	Space  color.Space
	Offset int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s operand %q at offset %d: %v", e.Space.Name(), e.Token, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// pattern pairs a color space with the matcher for its operator.
type pattern struct {
	space color.Space
	re    *regexp.Regexp
}

const (
	number = `([0-9.]+)`
	ws     = `[\t\n\v\f\r ]+`
	// The operator must not be the prefix of a longer keyword.
	opEnd = `[^a-zA-Z]`
)

// patterns is scanned in order; the order has no effect on counts.
var patterns = []pattern{
	{color.RGB, regexp.MustCompile(number + ws + number + ws + number + ws + `rg` + opEnd)},
	{color.CMYK, regexp.MustCompile(number + ws + number + ws + number + ws + number + ws + `k` + opEnd)},
	{color.Gray, regexp.MustCompile(number + ws + `g` + opEnd)},
}

// Scan returns every rg, k and g invocation in data. Matches whose operands
// do not parse are dropped.
func Scan(data []byte) []Match {
	var matches []Match
	ScanFunc(data, func(m Match) {
		matches = append(matches, m)
	}, nil)
	return matches
}

// ScanFunc calls onMatch for every color operator invocation in data. For
// each pattern, all non-overlapping occurrences are reported in stream
// order. A match with an unparsable operand is passed to onError, when
// non-nil, and skipped.
func ScanFunc(data []byte, onMatch func(Match), onError func(error)) {
	for _, p := range patterns {
		for _, loc := range p.re.FindAllSubmatchIndex(data, -1) {
			m, err := parseMatch(p.space, data, loc)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onMatch(m)
		}
	}
}

// parseMatch decodes the submatches of loc. loc[0:2] spans the whole match
// and each following pair spans one operand.
func parseMatch(space color.Space, data []byte, loc []int) (Match, error) {
	groups := len(loc)/2 - 1
	if groups != space.Arity() {
		return Match{}, &ParseError{
			Space:  space,
			Offset: loc[0],
			Token:  string(data[loc[0]:loc[1]]),
			Err:    fmt.Errorf("expected %d operands, got %d", space.Arity(), groups),
		}
	}

	operands := make([]float64, groups)
	for i := 0; i < groups; i++ {
		start, end := loc[2+2*i], loc[3+2*i]
		tok := string(data[start:end])
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Match{}, &ParseError{Space: space, Offset: start, Token: tok, Err: err}
		}
		operands[i] = v
	}

	return Match{Space: space, Operands: operands, Offset: loc[0]}, nil
}

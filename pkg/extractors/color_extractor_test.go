package extractors

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/content"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/pdf"
)

func compress(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestExtractor(logs *bytes.Buffer) *ColorExtractor {
	return NewColorExtractor(WithLogger(log.New(logs, "", 0)))
}

func TestExtractStreamCounts(t *testing.T) {
	var logs bytes.Buffer
	e := newTestExtractor(&logs)
	e.ExtractStream([]byte("1 0 0 rg\n1 0 0 rg\n0 1 0 rg\n"))

	r := e.Registry()
	if r.Len() != 2 || r.Total() != 3 {
		t.Fatalf("got %d unique / %d total, want 2 / 3", r.Len(), r.Total())
	}
	ranked := r.Ranked()
	if ranked[0].Hex != "#FF0000" || ranked[0].Count != 2 {
		t.Errorf("top color = %s x%d, want #FF0000 x2", ranked[0].Hex, ranked[0].Count)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", logs.String())
	}
}

func TestExtractDocument(t *testing.T) {
	var logs bytes.Buffer
	e := newTestExtractor(&logs)

	doc := pdf.NewMemoryDocument(
		[][]byte{compress(t, "0 0 0 1 k\n0.5 g\n"), []byte("0.5 g\n")},
		nil,
		[][]byte{[]byte("1 0 0 rgb 0 0 1 rg\n")},
	)
	if err := e.ExtractDocument(context.Background(), doc); err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}

	r := e.Registry()
	if r.Total() != 4 {
		t.Errorf("total = %d, want 4", r.Total())
	}
	gray, ok := r.Lookup(color.MustNew(color.Gray, 0.5).Key())
	if !ok || gray.Count != 2 {
		t.Errorf("gray 0.5: %+v, %v", gray, ok)
	}
	if _, ok := r.Lookup(color.MustNew(color.RGB, 1, 0, 0).Key()); ok {
		t.Error("rgb operator prefix must not be recorded")
	}
	if _, ok := r.Lookup(color.MustNew(color.RGB, 0, 0, 1).Key()); !ok {
		t.Error("blue not recorded")
	}
}

func TestExtractEmptyPage(t *testing.T) {
	e := NewColorExtractor(WithLogger(nil))
	if err := e.ExtractDocument(context.Background(), pdf.NewMemoryDocument(nil)); err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}
	if e.Registry().Len() != 0 || e.Registry().Total() != 0 {
		t.Error("empty page must contribute nothing")
	}
}

func TestExtractLogsParseErrors(t *testing.T) {
	var logs bytes.Buffer
	e := newTestExtractor(&logs)
	e.ExtractStream([]byte("1.2.3 g\n0.25 g\n"))

	if e.Registry().Total() != 1 {
		t.Errorf("total = %d, want 1", e.Registry().Total())
	}
	if !strings.Contains(logs.String(), "error parsing color") {
		t.Errorf("expected a parse diagnostic, got %q", logs.String())
	}
}

func TestExtractSkipsOversizedStream(t *testing.T) {
	var logs bytes.Buffer
	e := NewColorExtractor(
		WithLogger(log.New(&logs, "", 0)),
		WithDecoder(&content.Decoder{MaxSize: 8}),
	)
	e.ExtractStream(compress(t, "1 0 0 rg\n0 1 0 rg\n"))
	e.ExtractStream([]byte("0 g\n"))

	if e.Registry().Total() != 1 {
		t.Errorf("total = %d, want 1", e.Registry().Total())
	}
	if !strings.Contains(logs.String(), "stream processing error") {
		t.Errorf("expected a decode diagnostic, got %q", logs.String())
	}
}

type failingPage struct{}

func (failingPage) GetPageNumber() int { return 7 }

func (failingPage) ContentStreams() ([][]byte, error) {
	return nil, errors.New("broken xref")
}

type pagesDoc struct {
	*pdf.MemoryDocument
	pages []pdf.Page
}

func (d pagesDoc) GetPages() []pdf.Page { return d.pages }

func TestExtractPropagatesContainerErrors(t *testing.T) {
	e := NewColorExtractor(WithLogger(nil))
	doc := pagesDoc{
		MemoryDocument: pdf.NewMemoryDocument(),
		pages:          []pdf.Page{&pdf.MemoryPage{Number: 1, Streams: [][]byte{[]byte("0 g\n")}}, failingPage{}},
	}

	err := e.ExtractDocument(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "page 7") {
		t.Fatalf("expected page 7 error, got %v", err)
	}
	if e.Registry().Total() != 1 {
		t.Errorf("colors before the failure should be kept, total = %d", e.Registry().Total())
	}
}

func TestExtractCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewColorExtractor(WithLogger(nil))
	err := e.ExtractDocument(ctx, pdf.NewMemoryDocument([][]byte{[]byte("0 g\n")}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

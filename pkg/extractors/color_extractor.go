package extractors

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/content"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/pdf"
)

// ColorExtractor collects the colors set by rg, k and g operators across
// content streams. Failures inside a stream are logged and skipped; only
// failures to reach a page's streams are returned.
type ColorExtractor struct {
	registry *Registry
	decoder  *content.Decoder
	logger   *log.Logger
}

// Option configures a ColorExtractor
type Option func(*ColorExtractor)

// WithLogger sets the logger for decode and parse diagnostics. A nil
// logger discards them.
func WithLogger(logger *log.Logger) Option {
	return func(e *ColorExtractor) {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		e.logger = logger
	}
}

// WithDecoder replaces the default stream decoder.
func WithDecoder(d *content.Decoder) Option {
	return func(e *ColorExtractor) {
		if d != nil {
			e.decoder = d
		}
	}
}

// NewColorExtractor creates an extractor with an empty registry
func NewColorExtractor(opts ...Option) *ColorExtractor {
	e := &ColorExtractor{
		registry: NewRegistry(),
		decoder:  content.DefaultDecoder,
		logger:   log.New(os.Stderr, "pdfcolors: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry colors are recorded into.
func (e *ColorExtractor) Registry() *Registry {
	return e.registry
}

// ExtractDocument processes every page of doc in order. Cancelling ctx
// stops the run between pages.
func (e *ColorExtractor) ExtractDocument(ctx context.Context, doc pdf.Document) error {
	for _, page := range doc.GetPages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.ExtractPage(page); err != nil {
			return err
		}
	}
	return nil
}

// ExtractPage processes the content streams of one page.
func (e *ColorExtractor) ExtractPage(page pdf.Page) error {
	streams, err := page.ContentStreams()
	if err != nil {
		return fmt.Errorf("page %d: %w", page.GetPageNumber(), err)
	}

	for i, raw := range streams {
		e.processStream(raw, fmt.Sprintf("page %d stream %d", page.GetPageNumber(), i))
	}
	return nil
}

// ExtractStream processes a single raw content stream.
func (e *ColorExtractor) ExtractStream(raw []byte) {
	e.processStream(raw, "stream")
}

func (e *ColorExtractor) processStream(raw []byte, where string) {
	e.guard(where, func() {
		data, err := e.decoder.Decode(raw)
		if err != nil {
			e.logger.Printf("%s: stream processing error: %v", where, err)
			return
		}

		content.ScanFunc(data, func(m content.Match) {
			c, err := m.Color()
			if err != nil {
				e.logger.Printf("%s: error parsing color: %v", where, err)
				return
			}
			e.registry.Record(c)
		}, func(err error) {
			e.logger.Printf("%s: error parsing color: %v", where, err)
		})
	})
}

// guard runs fn and turns a panic into a logged, skipped stream.
func (e *ColorExtractor) guard(where string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("%s: stream processing error: %v", where, r)
		}
	}()
	fn()
}

// Package pdfcolors extracts the colors set by the rg, k and g operators in
// a PDF's page content streams and counts how often each one is used.
package pdfcolors

import (
	"context"
	"errors"
	"fmt"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/extractors"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/pdf"
)

// Re-export types from the implementation packages for the public API
type (
	Document = pdf.Document
	Page     = pdf.Page
	Color    = color.Color
	Space    = color.Space
	Usage    = extractors.Usage
	Registry = extractors.Registry
	Option   = extractors.Option
)

// Re-export color spaces and options
const (
	RGB  = color.RGB
	CMYK = color.CMYK
	Gray = color.Gray
)

var (
	WithLogger        = extractors.WithLogger
	WithDecoder       = extractors.WithDecoder
	NewMemoryDocument = pdf.NewMemoryDocument
	NewColor          = color.New
)

// ErrUnknownBackend is returned by OpenWithBackend for an unrecognised name.
var ErrUnknownBackend = errors.New("unknown PDF backend")

// Open opens a PDF file and returns a Document
func Open(filepath string) (pdf.Document, error) {
	// pdfcpu hands back the raw streams, so it goes first
	doc, errPDFCPU := pdf.Open(filepath)
	if errPDFCPU == nil {
		return doc, nil
	}

	// Fallback to ledongthuc implementation
	doc, errLedongthuc := pdf.OpenWithLedongthuc(filepath)
	if errLedongthuc == nil {
		return doc, nil
	}

	// Final fallback to dslipak implementation
	doc, errDslipak := pdf.OpenWithDslipak(filepath)
	if errDslipak == nil {
		return doc, nil
	}

	return nil, errors.Join(errPDFCPU, errLedongthuc, errDslipak)
}

// OpenWithBackend opens a PDF file with the named backend. "auto" or ""
// behaves like Open.
func OpenWithBackend(filepath string, backend string) (pdf.Document, error) {
	switch backend {
	case "", "auto":
		return Open(filepath)
	case pdf.BackendPDFCPU:
		return pdf.Open(filepath)
	case pdf.BackendLedongthuc:
		return pdf.OpenWithLedongthuc(filepath)
	case pdf.BackendDslipak:
		return pdf.OpenWithDslipak(filepath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (pdf.Document, error) {
	return pdf.OpenWithPassword(filepath, password)
}

// Extract collects the colors used on every page of doc.
func Extract(ctx context.Context, doc pdf.Document, opts ...Option) (*Registry, error) {
	e := extractors.NewColorExtractor(opts...)
	if err := e.ExtractDocument(ctx, doc); err != nil {
		return nil, err
	}
	return e.Registry(), nil
}

// ExtractFile opens filepath and collects its colors.
func ExtractFile(ctx context.Context, filepath string, opts ...Option) (*Registry, error) {
	doc, err := Open(filepath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return Extract(ctx, doc, opts...)
}

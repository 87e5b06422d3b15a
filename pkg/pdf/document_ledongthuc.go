package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	pageCount := r.NumPage()
	doc.pages = make([]Page, pageCount)
	for i := 1; i <= pageCount; i++ {
		doc.pages[i-1] = &LedongthucPage{reader: r, pageNumber: i}
	}

	return doc, nil
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	return pageAt(d.pages, index)
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Backend returns "ledongthuc"
func (d *LedongthucDocument) Backend() string {
	return BackendLedongthuc
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	reader     *lpdf.Reader
	pageNumber int
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// ContentStreams returns the page's content streams. ledongthuc applies the
// stream filters itself, so the bytes are already decoded.
func (p *LedongthucPage) ContentStreams() (streams [][]byte, err error) {
	// The library panics on filters it does not support.
	defer func() {
		if r := recover(); r != nil {
			streams, err = nil, fmt.Errorf("page %d: %v", p.pageNumber, r)
		}
	}()

	contents := p.reader.Page(p.pageNumber).V.Key("Contents")
	switch contents.Kind() {
	case lpdf.Stream:
		data, err := readLedongthucStream(contents)
		if err != nil {
			return nil, err
		}
		return [][]byte{data}, nil
	case lpdf.Array:
		for i := 0; i < contents.Len(); i++ {
			item := contents.Index(i)
			if item.Kind() != lpdf.Stream {
				continue
			}
			data, err := readLedongthucStream(item)
			if err != nil {
				return nil, fmt.Errorf("content stream %d: %w", i, err)
			}
			streams = append(streams, data)
		}
		return streams, nil
	default:
		return nil, nil
	}
}

func readLedongthucStream(v lpdf.Value) ([]byte, error) {
	rc := v.Reader()
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return data, nil
}

package pdf

import (
	"fmt"
	"io"
	"os"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	file     io.Closer
	reader   *gopdf.Reader
	filepath string
	pages    []Page
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	// gopdf.Open never closes the file it opens, so keep our own handle.
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	r, err := gopdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DsliPakDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	pageCount := r.NumPage()
	doc.pages = make([]Page, pageCount)
	for i := 1; i <= pageCount; i++ {
		doc.pages[i-1] = &DsliPakPage{reader: r, pageNumber: i}
	}

	return doc, nil
}

// GetPages returns all pages in the document
func (d *DsliPakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DsliPakDocument) GetPage(index int) (Page, error) {
	return pageAt(d.pages, index)
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return len(d.pages)
}

// Backend returns "dslipak"
func (d *DsliPakDocument) Backend() string {
	return BackendDslipak
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	reader     *gopdf.Reader
	pageNumber int
}

// GetPageNumber returns the page number (1-based)
func (p *DsliPakPage) GetPageNumber() int {
	return p.pageNumber
}

// ContentStreams returns the page's content streams. dslipak applies the
// stream filters itself, so the bytes are already decoded.
func (p *DsliPakPage) ContentStreams() (streams [][]byte, err error) {
	// The library panics on filters it does not support.
	defer func() {
		if r := recover(); r != nil {
			streams, err = nil, fmt.Errorf("page %d: %v", p.pageNumber, r)
		}
	}()

	contents := p.reader.Page(p.pageNumber).V.Key("Contents")
	switch contents.Kind() {
	case gopdf.Stream:
		data, err := readDslipakStream(contents)
		if err != nil {
			return nil, err
		}
		return [][]byte{data}, nil
	case gopdf.Array:
		for i := 0; i < contents.Len(); i++ {
			item := contents.Index(i)
			if item.Kind() != gopdf.Stream {
				continue
			}
			data, err := readDslipakStream(item)
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

func readDslipakStream(v gopdf.Value) ([]byte, error) {
	rc := v.Reader()
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return data, nil
}

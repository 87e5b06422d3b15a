package pdf

// MemoryDocument is a Document whose pages are held in memory as raw
// content stream bytes.
type MemoryDocument struct {
	pages []Page
}

// MemoryPage is a page of a MemoryDocument
type MemoryPage struct {
	Number  int
	Streams [][]byte
}

// NewMemoryDocument builds a document with one page per argument. Each
// argument lists that page's content streams; nil means no /Contents.
func NewMemoryDocument(pages ...[][]byte) *MemoryDocument {
	d := &MemoryDocument{pages: make([]Page, len(pages))}
	for i, streams := range pages {
		d.pages[i] = &MemoryPage{Number: i + 1, Streams: streams}
	}
	return d
}

// GetPages returns all pages in the document
func (d *MemoryDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *MemoryDocument) GetPage(index int) (Page, error) {
	return pageAt(d.pages, index)
}

// PageCount returns the total number of pages
func (d *MemoryDocument) PageCount() int {
	return len(d.pages)
}

// Backend returns "memory"
func (d *MemoryDocument) Backend() string {
	return BackendMemory
}

// Close is a no-op
func (d *MemoryDocument) Close() error {
	return nil
}

// GetPageNumber returns the page number (1-based)
func (p *MemoryPage) GetPageNumber() int {
	return p.Number
}

// ContentStreams returns the page's streams
func (p *MemoryPage) ContentStreams() ([][]byte, error) {
	return p.Streams, nil
}

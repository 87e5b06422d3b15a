package pdf

// Document is an opened PDF whose pages expose their content streams.
type Document interface {
	// GetPages returns all pages in the document
	GetPages() []Page

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Backend names the library that parsed the document
	Backend() string

	// Close releases resources associated with the document
	Close() error
}

// Page is a single page in a PDF document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// ContentStreams returns the bytes of each content stream of the page,
	// in /Contents order. Streams may still be Flate compressed. A page
	// without /Contents returns no streams and no error.
	ContentStreams() ([][]byte, error)
}

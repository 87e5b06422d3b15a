// Package testpdf assembles small, well-formed PDF files for tests.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// Stream is one content stream of a page.
type Stream struct {
	Data  []byte
	Flate bool
}

// Page lists the content streams of a page. A nil Page has no /Contents;
// a page with exactly one stream references it directly rather than
// through an array.
type Page []Stream

// Build returns the bytes of a PDF with the given pages.
func Build(t testing.TB, pages ...Page) []byte {
	t.Helper()
	// 1 catalog, 2 page tree, then the pages, then their streams.
	nextObj := 3 + len(pages)
	pageObjs := make([]string, len(pages))
	var streamObjs [][]byte

	for i, page := range pages {
		var refs []string
		for _, s := range page {
			refs = append(refs, fmt.Sprintf("%d 0 R", nextObj))
			streamObjs = append(streamObjs, streamObject(t, s))
			nextObj++
		}

		contents := ""
		switch len(refs) {
		case 0:
		case 1:
			contents = " /Contents " + refs[0]
		default:
			contents = " /Contents [" + strings.Join(refs, " ") + "]"
		}
		pageObjs[i] = fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >>%s >>", contents)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}

	objects := [][]byte{
		[]byte("<< /Type /Catalog /Pages 2 0 R >>"),
		[]byte(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))),
	}
	for _, p := range pageObjs {
		objects = append(objects, []byte(p))
	}
	objects = append(objects, streamObjs...)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		buf.Write(obj)
		buf.WriteString("\nendobj\n")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// WriteFile writes a PDF with the given pages into a temporary directory
// and returns its path.
func WriteFile(t testing.TB, pages ...Page) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, Build(t, pages...), 0o644); err != nil {
		t.Fatalf("write test PDF: %v", err)
	}
	return path
}

// Compress zlib-compresses data.
func Compress(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("compress: %v", err)
	}
	return buf.Bytes()
}

func streamObject(t testing.TB, s Stream) []byte {
	data := s.Data
	filter := ""
	if s.Flate {
		data = Compress(t, data)
		filter = " /Filter /FlateDecode"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<< /Length %d%s >>\nstream\n", len(data), filter)
	buf.Write(data)
	buf.WriteString("\nendstream")
	return buf.Bytes()
}

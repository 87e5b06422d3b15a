package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/pyhub-apps/pdfcolors-golang"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/pdf"
	"github.com/pyhub-apps/pdfcolors-golang/pkg/report"
)

var errPasswordBackend = errors.New("-password is only supported by the pdfcpu backend")

// openPDF opens path with the chosen backend. Only pdfcpu can decrypt, so a
// password with any other explicit backend is rejected before opening.
func openPDF(path, backend, password string) (pdfcolors.Document, error) {
	if password == "" {
		return pdfcolors.OpenWithBackend(path, backend)
	}
	switch backend {
	case "", "auto", pdf.BackendPDFCPU:
		return pdfcolors.OpenWithPassword(path, password)
	default:
		return nil, fmt.Errorf("%w, not %q", errPasswordBackend, backend)
	}
}

func main() {
	top := flag.Int("top", report.DefaultTop, "number of colors to list (0 for all)")
	format := flag.String("format", report.FormatText, "output format: text, json or yaml")
	swatch := flag.String("swatch", "", "also write a PNG swatch of the listed colors to this file")
	backend := flag.String("backend", "auto", "PDF backend: auto, pdfcpu, ledongthuc or dslipak")
	password := flag.String("password", "", "password for encrypted PDFs (requires -backend auto or pdfcpu)")
	quiet := flag.Bool("quiet", false, "suppress decode and parse diagnostics")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: pdfcolors [flags] <pdf_file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)

	log.SetPrefix("pdfcolors: ")
	log.SetFlags(0)

	doc, err := openPDF(pdfPath, *backend, *password)
	if errors.Is(err, errPasswordBackend) {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []pdfcolors.Option{pdfcolors.WithLogger(log.Default())}
	if *quiet {
		opts = []pdfcolors.Option{pdfcolors.WithLogger(nil)}
	}

	reg, err := pdfcolors.Extract(ctx, doc, opts...)
	if err != nil {
		log.Fatalf("Failed to extract colors: %v", err)
	}

	summary := report.NewSummary(reg, *top)
	if err := report.Write(os.Stdout, *format, summary); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if *swatch != "" {
		f, err := os.Create(*swatch)
		if err != nil {
			log.Fatalf("Failed to create swatch: %v", err)
		}
		if err := report.WriteSwatch(f, summary); err != nil {
			f.Close()
			log.Fatalf("Failed to write swatch: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to write swatch: %v", err)
		}
	}
}

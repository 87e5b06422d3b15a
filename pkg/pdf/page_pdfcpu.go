package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const flateFilter = "FlateDecode"

// PDFCPUPage implements the Page interface using pdfcpu
type PDFCPUPage struct {
	ctx        *model.Context
	pageNumber int
	pageDict   types.Dict
}

// NewPDFCPUPage creates a new page using pdfcpu context
func NewPDFCPUPage(ctx *model.Context, pageNumber int) (*PDFCPUPage, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}

	if pageNumber < 1 || pageNumber > ctx.PageCount {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNumber, ctx.PageCount)
	}

	pageDict, _, _, err := ctx.PageDict(pageNumber, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	return &PDFCPUPage{
		ctx:        ctx,
		pageNumber: pageNumber,
		pageDict:   pageDict,
	}, nil
}

// GetPageNumber returns the page number (1-based)
func (p *PDFCPUPage) GetPageNumber() int {
	return p.pageNumber
}

// ContentStreams returns the content streams referenced by /Contents.
// Streams filtered only by FlateDecode are returned still compressed.
func (p *PDFCPUPage) ContentStreams() ([][]byte, error) {
	contents := p.pageDict["Contents"]
	if contents == nil {
		return nil, nil
	}

	// /Contents is a stream or an array of streams; either may be indirect.
	obj, err := p.ctx.Dereference(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference contents: %w", err)
	}

	refs := []types.Object{contents}
	if arr, ok := obj.(types.Array); ok {
		refs = arr
	}

	streams := make([][]byte, 0, len(refs))
	for i, ref := range refs {
		sd, _, err := p.ctx.DereferenceStreamDict(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to dereference content stream %d: %w", i, err)
		}
		if sd == nil {
			continue
		}

		data, err := streamBytes(sd)
		if err != nil {
			return nil, fmt.Errorf("failed to decode content stream %d: %w", i, err)
		}
		streams = append(streams, data)
	}

	return streams, nil
}

// streamBytes returns the raw bytes of a stream that is unfiltered or only
// Flate compressed; any other filter chain is decoded by pdfcpu.
func streamBytes(sd *types.StreamDict) ([]byte, error) {
	if sd.Raw != nil && flateOnly(sd.FilterPipeline) {
		return sd.Raw, nil
	}

	if sd.Content == nil {
		if err := sd.Decode(); err != nil {
			return nil, err
		}
	}
	return sd.Content, nil
}

func flateOnly(pipeline []types.PDFFilter) bool {
	switch len(pipeline) {
	case 0:
		return true
	case 1:
		return pipeline[0].Name == flateFilter && pipeline[0].DecodeParms == nil
	default:
		return false
	}
}

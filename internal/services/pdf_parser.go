package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct {
	maxPages int
}

// NewPDFParserService returns a parser that rejects documents with more than
// maxPages pages. A non-positive maxPages disables the limit.
func NewPDFParserService(maxPages int) PDFParserService {
	return &pdfParserService{maxPages: maxPages}
}

// ExtractText concatenates the plain text of every page in document order.
// The page limit is checked before any page is read.
func (p *pdfParserService) ExtractText(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	if p.maxPages > 0 && totalPage > p.maxPages {
		return nil, &PageLimitError{Pages: totalPage, Limit: p.maxPages}
	}

	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		pages = append(pages, text)
	}

	return &PDFContent{
		Text:      strings.Join(pages, "\n"),
		PageCount: totalPage,
	}, nil
}

// Package rasterize converts a PDF byte stream into an ordered sequence of
// page images ready for transmission to a vision model.
package rasterize

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrUnreadablePDF indicates the bytes are not a valid PDF or the backend
// could not produce a single page. The user must supply a better scan.
var ErrUnreadablePDF = errors.New("unreadable PDF")

// renderDPI is the resolution pages are rendered at. 300 DPI keeps small
// print in scanned rulings legible for the vision model.
const renderDPI = "300"

// Page is one rasterized page. Index is 0-based and preserves page order.
type Page struct {
	Index int
	PNG   []byte
}

// Base64 encodes the page image for transmission to the vision model.
func (p Page) Base64() string {
	return base64.StdEncoding.EncodeToString(p.PNG)
}

// DataURL returns the page image as a data URL.
func (p Page) DataURL() string {
	return "data:image/png;base64," + p.Base64()
}

// Rasterize converts PDF bytes into ordered page images.
// Pages are rendered sequentially: order in the result is load-bearing for
// the document text assembled downstream.
func Rasterize(ctx context.Context, pdfBytes []byte) ([]Page, error) {
	pageCount, err := api.PageCount(bytes.NewReader(pdfBytes), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrUnreadablePDF)
	}

	// pdftoppm wants a file on disk.
	tmpDir, err := os.MkdirTemp("", "dictamen-raster-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write temp PDF: %w", err)
	}

	pages := make([]Page, 0, pageCount)
	for num := 1; num <= pageCount; num++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		png, err := renderPage(ctx, pdfPath, tmpDir, num)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, num, err)
		}
		pages = append(pages, Page{Index: num - 1, PNG: png})
	}

	return pages, nil
}

// renderPage renders a single page using pdftoppm (poppler-utils).
func renderPage(ctx context.Context, pdfPath, tmpDir string, pageNum int) ([]byte, error) {
	outputPrefix := filepath.Join(tmpDir, fmt.Sprintf("page_%04d", pageNum))

	pageStr := fmt.Sprintf("%d", pageNum)
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", renderDPI,
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	// pdftoppm with -singlefile creates: <prefix>.png
	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}

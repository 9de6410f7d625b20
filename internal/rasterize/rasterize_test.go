package rasterize

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRasterize_GarbageIsUnreadable(t *testing.T) {
	_, err := Rasterize(context.Background(), []byte("this is not a pdf"))
	if !errors.Is(err, ErrUnreadablePDF) {
		t.Fatalf("Rasterize() error = %v, want ErrUnreadablePDF", err)
	}
}

func TestRasterize_EmptyIsUnreadable(t *testing.T) {
	_, err := Rasterize(context.Background(), nil)
	if !errors.Is(err, ErrUnreadablePDF) {
		t.Fatalf("Rasterize() error = %v, want ErrUnreadablePDF", err)
	}
}

func TestPage_DataURL(t *testing.T) {
	p := Page{Index: 0, PNG: []byte{0x89, 'P', 'N', 'G'}}

	url := p.DataURL()
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("DataURL() = %q, want data URL prefix", url)
	}
	if p.Base64() != url[len("data:image/png;base64,"):] {
		t.Fatalf("DataURL() payload differs from Base64()")
	}
}

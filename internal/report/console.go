// Package report renders the human-readable console output of a run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/MikhailRaia/testpost/internal/model"
)

const (
	bannerWidth   = 80
	previewLength = 50
)

var banner = strings.Repeat("=", bannerWidth)

// Preview returns the first previewLength characters of payload followed by "...".
func Preview(payload string) string {
	return lo.Substring(payload, 0, previewLength) + "..."
}

// WriteSummary writes the statistics block, the payload preview and the URL.
func WriteSummary(w io.Writer, f model.Fixture) error {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("TEST POST GENERATOR\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Title: %s\n", f.Title)
	fmt.Fprintf(&b, "Original HTML: %d bytes\n", f.RawSize)
	fmt.Fprintf(&b, "Compressed: %d bytes\n", f.CompressedSize)
	fmt.Fprintf(&b, "Compression: %.1f%%\n", f.Ratio())
	b.WriteString("\n")
	b.WriteString("Base64 Encoded Data:\n")
	b.WriteString(Preview(f.Payload) + "\n")
	b.WriteString("\n")
	b.WriteString("Decoder URL:\n")
	b.WriteString(f.URL + "\n")
	b.WriteString("\n")
	b.WriteString(banner + "\n")
	b.WriteString("Copy the URL above to test in browser!\n")
	b.WriteString(banner + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSaved confirms where the URL was written.
func WriteSaved(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "\nURL saved to: %s\n", path)
	return err
}

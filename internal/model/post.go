package model

import "fmt"

// Post is a document to be packed into a decoder URL.
type Post struct {
	Title string
	Body  string
}

// Fixture holds the values derived from a Post.
type Fixture struct {
	Title          string
	URL            string
	Payload        string
	RawSize        int
	CompressedSize int
}

// Ratio returns the percentage of bytes saved by compression.
func (f Fixture) Ratio() float64 {
	if f.RawSize == 0 {
		return 0
	}
	return 100 * (1 - float64(f.CompressedSize)/float64(f.RawSize))
}

// Report is the JSON representation of a Fixture.
type Report struct {
	Title          string `json:"title"`
	HTMLSize       int    `json:"htmlSize"`
	CompressedSize int    `json:"compressedSize"`
	Ratio          string `json:"ratio"`
	Base64         string `json:"base64"`
	DecoderURL     string `json:"decoderUrl"`
}

// NewReport builds a Report from a Fixture.
func NewReport(f Fixture) Report {
	return Report{
		Title:          f.Title,
		HTMLSize:       f.RawSize,
		CompressedSize: f.CompressedSize,
		Ratio:          fmt.Sprintf("%.1f%%", f.Ratio()),
		Base64:         f.Payload,
		DecoderURL:     f.URL,
	}
}

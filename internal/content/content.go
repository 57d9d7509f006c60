// Package content supplies the documents that get packed into decoder URLs.
package content

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/MikhailRaia/testpost/internal/model"
)

// StdinPath makes Load read the document from stdin.
const StdinPath = "-"

const stdinTitle = "Blog Post"

// DefaultTitle is the title of the built-in test post.
const DefaultTitle = "Lorem Ipsum Decoder Test"

// DefaultBody is the HTML of the built-in test post.
const DefaultBody = `<h1>Lorem Ipsum Decoder Test</h1>
<p>This is a test post to verify the self-hosted decoder is working correctly.</p>
<h2>What is Lorem Ipsum?</h2>
<p>Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.</p>
<h2>Why Use It?</h2>
<p>Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.</p>
<h2>Testing Self-Hosted Decoder</h2>
<p>This post is compressed with gzip and base64 encoded, then served by the self-hosted decoder at /decoder.html. If you can read this, the decoder is working!</p>
<footer style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #ccc; color: #888; font-size: 0.9em;">
  <p>✅ Decoder Status: <strong>WORKING</strong></p>
</footer>`

// Default returns the built-in test post.
func Default() model.Post {
	return model.Post{
		Title: DefaultTitle,
		Body:  DefaultBody,
	}
}

// Load reads a document from path, or from stdin when path is StdinPath.
// The title is taken from the document itself when it has one.
func Load(path string, stdin io.Reader) (model.Post, error) {
	var (
		data     []byte
		err      error
		fallback string
	)

	if path == StdinPath {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return model.Post{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		fallback = stdinTitle
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return model.Post{}, fmt.Errorf("failed to read input file: %w", err)
		}
		fallback = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	body := string(data)

	return model.Post{
		Title: DeriveTitle(body, fallback),
		Body:  body,
	}, nil
}

// DeriveTitle returns the text of the first non-empty <title> or <h1> in body,
// or fallback if there is none.
func DeriveTitle(body, fallback string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return fallback
	}

	for _, selector := range []string{"title", "h1"} {
		title := ""
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			title = strings.Join(strings.Fields(s.Text()), " ")
			return title == ""
		})
		if title != "" {
			return title
		}
	}

	return fallback
}

// Minify strips insignificant whitespace and optional markup from an HTML document.
func Minify(body string) (string, error) {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)

	out, err := m.String("text/html", body)
	if err != nil {
		return "", fmt.Errorf("failed to minify document: %w", err)
	}

	return out, nil
}

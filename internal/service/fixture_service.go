package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/testpost/internal/codec"
	"github.com/MikhailRaia/testpost/internal/model"
)

const (
	// MaxPostSize is the largest raw document accepted, in bytes.
	MaxPostSize = 32768
	// MaxShareableSize is the compressed size above which URLs get hard to share.
	MaxShareableSize = 4000
	// MaxTitleLength is the number of title runes kept in the URL.
	MaxTitleLength = 50
)

// FixtureService packs posts into decoder URLs and unpacks them again.
type FixtureService struct {
	baseURL  string
	encoding codec.Encoding
}

// NewFixtureService constructs a FixtureService for the given decoder page.
// baseURL may be given with or without the trailing '#'.
func NewFixtureService(baseURL string, encoding codec.Encoding) *FixtureService {
	return &FixtureService{
		baseURL:  strings.TrimSuffix(baseURL, "#"),
		encoding: encoding,
	}
}

// Generate compresses and encodes post and builds its decoder URL.
// The payload is decoded again before returning, so a returned Fixture always
// reproduces post.Body exactly.
func (s *FixtureService) Generate(ctx context.Context, post model.Post) (model.Fixture, error) {
	if err := ctx.Err(); err != nil {
		return model.Fixture{}, err
	}

	raw := []byte(post.Body)
	if len(raw) == 0 {
		return model.Fixture{}, ErrEmptyPost
	}
	if len(raw) > MaxPostSize {
		return model.Fixture{}, fmt.Errorf("%w: %d bytes (max %d)", ErrPostTooLarge, len(raw), MaxPostSize)
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return model.Fixture{}, fmt.Errorf("error compressing post: %w", err)
	}

	if len(compressed) > MaxShareableSize {
		log.Warn().
			Int("compressedSize", len(compressed)).
			Int("limit", MaxShareableSize).
			Msg("Compressed post may not be shareable on social media")
	}

	payload := s.encoding.Encode(compressed)
	fixture := model.Fixture{
		Title:          post.Title,
		URL:            s.BuildURL(post.Title, payload),
		Payload:        payload,
		RawSize:        len(raw),
		CompressedSize: len(compressed),
	}

	if err := verifyPayload(payload, post.Body); err != nil {
		return model.Fixture{}, err
	}

	log.Debug().
		Str("title", post.Title).
		Int("rawSize", fixture.RawSize).
		Int("compressedSize", fixture.CompressedSize).
		Msg("Fixture generated")

	return fixture, nil
}

// BuildURL joins the base address, the escaped title and the payload.
func (s *FixtureService) BuildURL(title, payload string) string {
	return s.baseURL + "#" + EscapeTitle(title) + "/" + payload
}

// Decode recovers the post carried in the fragment of rawURL.
// The fragment is split at its first '/'; everything after it is payload,
// so URLs whose title contains '/' cannot be decoded.
func (s *FixtureService) Decode(ctx context.Context, rawURL string) (model.Post, error) {
	if err := ctx.Err(); err != nil {
		return model.Post{}, err
	}

	_, fragment, ok := strings.Cut(rawURL, "#")
	if !ok {
		return model.Post{}, ErrInvalidFragment
	}

	title, payload, ok := strings.Cut(fragment, "/")
	if !ok || payload == "" {
		return model.Post{}, ErrInvalidFragment
	}

	compressed, err := codec.DecodePayload(payload)
	if err != nil {
		return model.Post{}, err
	}

	body, err := codec.Decompress(compressed)
	if err != nil {
		return model.Post{}, err
	}

	return model.Post{
		Title: strings.ReplaceAll(title, "%20", " "),
		Body:  string(body),
	}, nil
}

// EscapeTitle truncates title to MaxTitleLength runes and replaces spaces
// with %20. No other character is escaped.
func EscapeTitle(title string) string {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		title = string([]rune(title)[:MaxTitleLength])
	}
	return strings.ReplaceAll(title, " ", "%20")
}

func verifyPayload(payload, body string) error {
	compressed, err := codec.DecodePayload(payload)
	if err != nil {
		return fmt.Errorf("error verifying payload: %w", err)
	}

	decoded, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("error verifying payload: %w", err)
	}

	if string(decoded) != body {
		return ErrRoundTrip
	}

	return nil
}

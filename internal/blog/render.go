package blog

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns Markdown entry bodies into sanitized HTML or plain text.
type Renderer struct {
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps(), goldmarkhtml.WithXHTML()),
		),
		sanitizer: bluemonday.UGCPolicy(),
		stripper:  bluemonday.StrictPolicy(),
	}
}

func (r *Renderer) HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return string(r.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// Text renders source as plain text truncated to maxWords words.
func (r *Renderer) Text(source string, maxWords int) (string, error) {
	rendered, err := r.HTML(source)
	if err != nil {
		return "", err
	}

	words := strings.Fields(html.UnescapeString(r.stripper.Sanitize(rendered)))
	if maxWords > 0 && len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + " …", nil
	}

	return strings.Join(words, " "), nil
}

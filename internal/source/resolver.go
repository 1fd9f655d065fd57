// Package source resolves the news text fed into the pipeline: a literal
// string, a local file (txt, md, pdf) or a web page. Inputs longer than the
// configured budget are trimmed on chunk boundaries rather than mid-sentence.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	urlloader "github.com/cloudwego/eino-ext/components/document/loader/url"
	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino-ext/components/document/transformer/splitter/markdown"
	"github.com/cloudwego/eino-ext/components/document/transformer/splitter/recursive"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/utils"
)

// Options names the news text source. Exactly one field must be set.
type Options struct {
	Text string
	File string
	URL  string
}

// Resolver turns an Options into plain news text within the rune budget.
type Resolver struct {
	maxChars  int
	webLoader document.Loader
}

func NewResolver(ctx context.Context, maxChars int) (*Resolver, error) {
	if maxChars <= 0 {
		return nil, fmt.Errorf("maxChars must be positive, got %d", maxChars)
	}

	webLoader, err := urlloader.NewLoader(ctx, &urlloader.LoaderConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create URL loader: %w", err)
	}

	return &Resolver{maxChars: maxChars, webLoader: webLoader}, nil
}

func (r *Resolver) Resolve(ctx context.Context, opts Options) (string, error) {
	set := 0
	for _, v := range []string{opts.Text, opts.File, opts.URL} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set != 1 {
		return "", errors.New("exactly one of text, file or url must be provided")
	}

	var (
		text string
		err  error
	)
	switch {
	case strings.TrimSpace(opts.Text) != "":
		text = opts.Text
	case opts.File != "":
		text, err = r.loadFile(ctx, opts.File)
	default:
		text, err = r.loadURL(ctx, opts.URL)
	}
	if err != nil {
		return "", err
	}

	return r.capLength(ctx, text)
}

func (r *Resolver) loadFile(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return r.loadPDF(ctx, path)
	case ".md", ".markdown":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return r.flattenMarkdown(ctx, string(raw))
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(raw), nil
	}
}

func (r *Resolver) loadPDF(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p, err := pdf.NewPDFParser(ctx, &pdf.Config{})
	if err != nil {
		return "", fmt.Errorf("failed to create PDF parser: %w", err)
	}

	docs, err := p.Parse(ctx, f)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return joinDocs(docs), nil
}

func (r *Resolver) loadURL(ctx context.Context, u string) (string, error) {
	docs, err := r.webLoader.Load(ctx, document.Source{URI: u})
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", u, err)
	}

	utils.Zlog.Info("Loaded news text from URL",
		zap.String("url", u),
		zap.Int("documents", len(docs)))

	return joinDocs(docs), nil
}

// flattenMarkdown strips the document structure so headings don't leak into
// the narration input: sections are split on headers and rejoined as prose.
func (r *Resolver) flattenMarkdown(ctx context.Context, raw string) (string, error) {
	splitter, err := markdown.NewHeaderSplitter(ctx, &markdown.HeaderConfig{
		Headers: map[string]string{
			"#":   "h1",
			"##":  "h2",
			"###": "h3",
		},
		TrimHeaders: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create markdown splitter: %w", err)
	}

	docs, err := splitter.Transform(ctx, []*schema.Document{{Content: raw}})
	if err != nil {
		return "", fmt.Errorf("failed to split markdown: %w", err)
	}

	return joinDocs(docs), nil
}

// capLength trims text exceeding the budget on recursive-splitter chunk
// boundaries, keeping leading chunks until the budget is spent.
func (r *Resolver) capLength(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= r.maxChars {
		return text, nil
	}

	splitter, err := recursive.NewSplitter(ctx, &recursive.Config{
		ChunkSize:   r.maxChars,
		OverlapSize: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create recursive splitter: %w", err)
	}

	chunks, err := splitter.Transform(ctx, []*schema.Document{{Content: text}})
	if err != nil {
		return "", fmt.Errorf("failed to split input: %w", err)
	}

	var b strings.Builder
	kept := 0
	for _, c := range chunks {
		n := utf8.RuneCountInString(c.Content)
		if kept+n > r.maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
			kept++
		}
		b.WriteString(c.Content)
		kept += n
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		// Single oversized chunk; hard-truncate as a last resort.
		runes := []rune(text)
		out = strings.TrimSpace(string(runes[:r.maxChars]))
	}

	utils.Zlog.Warn("News text exceeded input budget and was trimmed",
		zap.Int("budget", r.maxChars),
		zap.Int("original_runes", utf8.RuneCountInString(text)))

	return out, nil
}

func joinDocs(docs []*schema.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if s := strings.TrimSpace(d.Content); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

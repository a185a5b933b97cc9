package site

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/draftml-dev/draftml/internal/config"
	"github.com/draftml-dev/draftml/internal/errors"
)

// Builder renders pages to files in the configured output directory.
type Builder struct {
	cfg      *config.Config
	minifier *minify.M
}

// BuildResult summarizes one build.
type BuildResult struct {
	// Files lists the written files, relative to the output directory.
	Files []string

	// Bytes is the total size written.
	Bytes int64
}

// NewBuilder creates a builder for the given configuration.
func NewBuilder(cfg *config.Config) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}

	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)

	return &Builder{cfg: cfg, minifier: m}
}

// Build renders every page to the output directory, minifying when
// configured. A render failure aborts the build; files already written
// are left in place.
func (b *Builder) Build(pages ...Page) (*BuildResult, error) {
	if err := os.MkdirAll(b.cfg.Output, 0o755); err != nil {
		return nil, errors.Wrap(err, "B001", errors.CategoryBuild,
			"cannot create output directory "+b.cfg.Output)
	}

	result := &BuildResult{}
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.Render(&buf); err != nil {
			return nil, errors.Wrap(err, "B002", errors.CategoryBuild,
				"render failed for "+p.Path)
		}

		out := buf.Bytes()
		if b.cfg.Build.Minify {
			minified, err := b.minifier.Bytes("text/html", out)
			if err != nil {
				return nil, errors.Wrap(err, "B003", errors.CategoryBuild,
					"minify failed for "+p.Path)
			}
			out = minified
		}

		name := p.OutName()
		path := filepath.Join(b.cfg.Output, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "B004", errors.CategoryBuild,
				"cannot create directory for "+name)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, errors.Wrap(err, "B005", errors.CategoryBuild,
				"cannot write "+name)
		}

		result.Files = append(result.Files, name)
		result.Bytes += int64(len(out))
	}
	return result, nil
}

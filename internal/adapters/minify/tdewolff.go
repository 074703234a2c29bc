package minify

import (
	"bytes"
	"context"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*Tdewolff)(nil)

const mediaTypeJS = "application/javascript"

// Tdewolff minifies with tdewolff/minify. It produces smaller output for some inputs
// but has no source map support, so the returned map is always nil.
type Tdewolff struct {
	m *minify.M
}

// NewTdewolff creates a new Tdewolff minifier.
func NewTdewolff() *Tdewolff {
	m := minify.New()
	m.AddFunc(mediaTypeJS, js.Minify)
	return &Tdewolff{m: m}
}

// Minify implements ports.Minifier.
func (t *Tdewolff) Minify(ctx context.Context, name string, code []byte, _ *domain.SourceMap) ([]byte, *domain.SourceMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrMinifyFailed.Error())
	}

	var out bytes.Buffer
	out.Grow(len(code))
	if err := t.m.Minify(mediaTypeJS, &out, bytes.NewReader(code)); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "file", name)
	}
	return out.Bytes(), nil, nil
}

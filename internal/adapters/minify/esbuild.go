// Package minify implements the minifier port.
package minify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/fold/internal/core/domain"
	"go.trai.ch/fold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*Esbuild)(nil)

// Esbuild minifies with esbuild's transform API. The incoming source map is passed
// along as an inline map so the returned map points at the original modules.
type Esbuild struct{}

// NewEsbuild creates a new Esbuild minifier.
func NewEsbuild() *Esbuild {
	return &Esbuild{}
}

// Minify implements ports.Minifier.
func (m *Esbuild) Minify(ctx context.Context, name string, code []byte, sm *domain.SourceMap) ([]byte, *domain.SourceMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrMinifyFailed.Error())
	}

	input := code
	if sm != nil {
		url, err := sm.DataURL()
		if err != nil {
			return nil, nil, err
		}
		input = domain.WithSourceMappingURL(code, url)
	}

	result := api.Transform(string(input), api.TransformOptions{
		Loader:            api.LoaderJS,
		Sourcefile:        name,
		Sourcemap:         api.SourceMapExternal,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		lines := make([]string, 0, len(result.Errors))
		for _, msg := range result.Errors {
			if msg.Location != nil {
				lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text))
				continue
			}
			lines = append(lines, msg.Text)
		}
		return nil, nil, zerr.With(
			zerr.Wrap(errors.New(strings.Join(lines, "\n")), domain.ErrMinifyFailed.Error()),
			"file", name,
		)
	}

	out, err := domain.ParseSourceMap(result.Map)
	if err != nil {
		return nil, nil, err
	}
	return result.Code, out, nil
}

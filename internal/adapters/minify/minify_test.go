package minify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/adapters/minify"
	"go.trai.ch/fold/internal/core/domain"
)

const source = `(() => {
  function greetEveryone(listOfPeople) {
    for (const person of listOfPeople) {
      console.log("hello " + person);
    }
  }
  greetEveryone(["a", "b"]);
})();
`

func TestEsbuild_Minify(t *testing.T) {
	in := &domain.SourceMap{
		Version:        3,
		Sources:        []string{"components/todo.js"},
		SourcesContent: []string{source},
		Names:          []string{},
		Mappings:       "AAAA;AACA;AACA;AACA;AACA;AACA;AACA;AACA",
	}

	code, sm, err := minify.NewEsbuild().Minify(context.Background(), "bundle.js", []byte(source), in)
	require.NoError(t, err)

	assert.Less(t, len(code), len(source))
	assert.NotContains(t, string(code), "listOfPeople")
	assert.NotContains(t, string(code), domain.SourceMappingURLPrefix)

	require.NotNil(t, sm)
	assert.Equal(t, 3, sm.Version)
	assert.Equal(t, []string{"components/todo.js"}, sm.Sources)
	assert.NotEmpty(t, sm.Mappings)
}

func TestEsbuild_MinifyWithoutMap(t *testing.T) {
	code, sm, err := minify.NewEsbuild().Minify(context.Background(), "bundle.js", []byte(source), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	require.NotNil(t, sm)
	assert.Equal(t, []string{"bundle.js"}, sm.Sources)
}

func TestEsbuild_MinifySyntaxError(t *testing.T) {
	_, _, err := minify.NewEsbuild().Minify(context.Background(), "bundle.js", []byte("var = ;"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMinifyFailed.Error())
}

func TestTdewolff_Minify(t *testing.T) {
	code, sm, err := minify.NewTdewolff().Minify(context.Background(), "bundle.js", []byte(source), nil)
	require.NoError(t, err)
	assert.Nil(t, sm)
	assert.Less(t, len(code), len(source))
	assert.Contains(t, string(code), "hello ")
}

func TestMinify_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, m := range minify.NewSet() {
		t.Run(name, func(t *testing.T) {
			_, _, err := m.Minify(ctx, "bundle.js", []byte(source), nil)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrMinifyFailed.Error())
		})
	}
}

func TestSet_Lookup(t *testing.T) {
	set := minify.NewSet()

	_, ok := set.Lookup(domain.MinifierEsbuild)
	assert.True(t, ok)
	_, ok = set.Lookup(domain.MinifierTdewolff)
	assert.True(t, ok)
	_, ok = set.Lookup("uglify")
	assert.False(t, ok)
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fold/internal/core/domain"
)

func TestSourceMap_InlineRoundTrip(t *testing.T) {
	sm := &domain.SourceMap{
		Version:  3,
		Sources:  []string{"components/todo.js"},
		Names:    []string{},
		Mappings: "AAAA",
	}

	url, err := sm.DataURL()
	require.NoError(t, err)

	code := domain.WithSourceMappingURL([]byte("console.log(1);"), url)
	assert.Equal(t, "console.log(1);\n//# sourceMappingURL="+url+"\n", string(code))

	body, got, err := domain.ExtractInlineSourceMap(code)
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);\n", string(body))
	assert.Equal(t, sm, got)
}

func TestExtractInlineSourceMap(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantBody string
		wantMap  bool
		wantErr  string
	}{
		{
			name:     "no comment",
			code:     "var a = 1;\n",
			wantBody: "var a = 1;\n",
		},
		{
			name:     "linked map left in place",
			code:     "var a = 1;\n//# sourceMappingURL=bundle.js.map\n",
			wantBody: "var a = 1;\n//# sourceMappingURL=bundle.js.map\n",
		},
		{
			name:     "comment not on last line",
			code:     "//# sourceMappingURL=data:application/json;base64,e30=\nvar a = 1;\n",
			wantBody: "//# sourceMappingURL=data:application/json;base64,e30=\nvar a = 1;\n",
		},
		{
			name:    "bad base64",
			code:    "var a;\n//# sourceMappingURL=data:application/json;base64,!!!\n",
			wantErr: domain.ErrSourceMapMalformed.Error(),
		},
		{
			name:    "wrong version",
			code:    "var a;\n//# sourceMappingURL=data:application/json;base64,eyJ2ZXJzaW9uIjoyfQ==\n",
			wantErr: domain.ErrSourceMapMalformed.Error(),
		},
		{
			name:     "valid",
			code:     "var a;\n//# sourceMappingURL=data:application/json;base64,eyJ2ZXJzaW9uIjozLCJzb3VyY2VzIjpbXSwibmFtZXMiOltdLCJtYXBwaW5ncyI6IiJ9\n",
			wantBody: "var a;\n",
			wantMap:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, sm, err := domain.ExtractInlineSourceMap([]byte(tt.code))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
			assert.Equal(t, tt.wantMap, sm != nil)
		})
	}
}

package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"go.trai.ch/zerr"
)

const (
	// SourceMappingURLPrefix starts the comment that links code to its source map.
	SourceMappingURLPrefix = "//# sourceMappingURL="

	inlineMapPrefix = "data:application/json;base64,"
)

// ParseSourceMap decodes a JSON source map.
func ParseSourceMap(data []byte) (*SourceMap, error) {
	var sm SourceMap
	if err := json.Unmarshal(data, &sm); err != nil {
		return nil, zerr.Wrap(err, ErrSourceMapMalformed.Error())
	}
	if sm.Version != 3 {
		return nil, zerr.With(ErrSourceMapMalformed, "version", sm.Version)
	}
	return &sm, nil
}

// Encode returns the JSON encoding of the source map.
func (m *SourceMap) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, zerr.Wrap(err, ErrSourceMapEncodeFailed.Error())
	}
	return data, nil
}

// DataURL returns the source map as a base64 data URL.
func (m *SourceMap) DataURL() (string, error) {
	data, err := m.Encode()
	if err != nil {
		return "", err
	}
	return inlineMapPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// SplitSourceMappingURL separates code from its trailing sourceMappingURL comment.
// url is empty when the code carries no such comment.
func SplitSourceMappingURL(code []byte) (body []byte, url string) {
	trimmed := bytes.TrimRight(code, " \t\r\n")
	idx := bytes.LastIndex(trimmed, []byte(SourceMappingURLPrefix))
	if idx < 0 {
		return code, ""
	}
	// Only a comment on the last line counts.
	if bytes.ContainsAny(trimmed[idx:], "\r\n") {
		return code, ""
	}
	return trimmed[:idx], string(trimmed[idx+len(SourceMappingURLPrefix):])
}

// ExtractInlineSourceMap strips a trailing inline source map from code and decodes it.
// The returned map is nil when the code has no inline map.
func ExtractInlineSourceMap(code []byte) ([]byte, *SourceMap, error) {
	body, url := SplitSourceMappingURL(code)
	if url == "" {
		return code, nil, nil
	}

	encoded, ok := bytes.CutPrefix([]byte(url), []byte(inlineMapPrefix))
	if !ok {
		// Linked maps are left in place; only inline maps are loaded.
		return code, nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, nil, zerr.Wrap(err, ErrSourceMapMalformed.Error())
	}

	sm, err := ParseSourceMap(data)
	if err != nil {
		return nil, nil, err
	}
	return body, sm, nil
}

// WithSourceMappingURL appends a sourceMappingURL comment pointing at url.
func WithSourceMappingURL(code []byte, url string) []byte {
	out := make([]byte, 0, len(code)+len(SourceMappingURLPrefix)+len(url)+2)
	out = append(out, code...)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, SourceMappingURLPrefix...)
	out = append(out, url...)
	return append(out, '\n')
}

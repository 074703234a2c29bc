package domain

// SourceMap is a revision 3 source map.
type SourceMap struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Bundle is the raw result of resolving and concatenating the entry's modules.
type Bundle struct {
	// Contents holds the generated code. It may end with an inline source map comment.
	Contents []byte
	// Inputs lists the absolute paths of every module that went into the bundle.
	Inputs []string
}

// Artifact is the in-memory file flowing through the pipeline stages.
type Artifact struct {
	// Name is the bundle file name, relative to the output directory.
	Name     string
	Contents []byte
	// Map is the source map tracked for Contents, nil until maps are loaded.
	Map *SourceMap
	// MapContents is the encoded external source map, set by the write-maps stage.
	MapContents []byte
	Inputs      []string
}

// OutputFile is a file ready to be written to the output directory.
type OutputFile struct {
	// Name is relative to the output directory.
	Name     string
	Contents []byte
}

// Files returns the output files materialized by the artifact.
func (a *Artifact) Files(mapFile string) []OutputFile {
	files := []OutputFile{{Name: a.Name, Contents: a.Contents}}
	if a.MapContents != nil {
		files = append(files, OutputFile{Name: mapFile, Contents: a.MapContents})
	}
	return files
}

package config

// Foldfile represents the structure of the fold.yaml configuration file.
// Every field is optional; empty fields keep their defaults.
type Foldfile struct {
	Version  string `yaml:"version"`
	Entry    string `yaml:"entry"`
	OutDir   string `yaml:"outdir"`
	OutFile  string `yaml:"outfile"`
	Target   string `yaml:"target"`
	Minifier string `yaml:"minifier"`
	Notify   string `yaml:"notify"`
	Debounce string `yaml:"debounce"`
}

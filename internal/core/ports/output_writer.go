package ports

import "go.trai.ch/fold/internal/core/domain"

// OutputWriter materializes output files in a directory.
//
//go:generate mockgen -source=output_writer.go -destination=mocks/mock_output_writer.go -package=mocks
type OutputWriter interface {
	// Write writes files into dir, creating it when needed, and returns the absolute
	// paths of the files written together with their content digests.
	Write(dir string, files []domain.OutputFile) (map[string]string, error)

	// Remove deletes the given files and returns the paths that existed.
	Remove(paths []string) ([]string, error)
}

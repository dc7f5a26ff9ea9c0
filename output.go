package relwatch

// OutputWriter persists rendered report output.
type OutputWriter interface {
	// WriteOutput writes content to the given path, creating parent
	// directories as needed.
	WriteOutput(path string, content string) error
}

package mock

import "github.com/mjarosz/relwatch"

var _ relwatch.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of relwatch.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(path string, content string) error
}

func (w *OutputWriter) WriteOutput(path string, content string) error {
	return w.WriteOutputFn(path, content)
}

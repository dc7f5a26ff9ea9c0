package mock

import "github.com/mjarosz/relwatch"

var _ relwatch.Converter = (*Converter)(nil)

// Converter is a mock implementation of relwatch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

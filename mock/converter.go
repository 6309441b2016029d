package mock

import "github.com/fwojciec/jobscan"

var _ jobscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

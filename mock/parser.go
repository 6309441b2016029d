package mock

import "github.com/fwojciec/jobscan"

var _ jobscan.Parser = (*Parser)(nil)

// Parser is a mock implementation of jobscan.Parser.
type Parser struct {
	ParseFn func(html string) (*jobscan.Candidate, error)
}

func (p *Parser) Parse(html string) (*jobscan.Candidate, error) {
	return p.ParseFn(html)
}

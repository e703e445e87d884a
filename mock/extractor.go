package mock

import "github.com/mwielbut/noveltrans"

var _ noveltrans.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of noveltrans.Extractor.
type Extractor struct {
	ExtractFn func(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error)
}

func (e *Extractor) Extract(markup string, rules noveltrans.RuleSet) (*noveltrans.Chapter, error) {
	return e.ExtractFn(markup, rules)
}

package mock

import "github.com/mwielbut/noveltrans"

var _ noveltrans.Converter = (*Converter)(nil)

// Converter is a mock implementation of noveltrans.Converter.
type Converter struct {
	ConvertChapterFn func(ch *noveltrans.Chapter) (string, error)
}

func (c *Converter) ConvertChapter(ch *noveltrans.Chapter) (string, error) {
	return c.ConvertChapterFn(ch)
}

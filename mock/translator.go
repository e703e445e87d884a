package mock

import (
	"context"

	"github.com/mwielbut/noveltrans"
)

var _ noveltrans.Translator = (*Translator)(nil)

// Translator is a mock implementation of noveltrans.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, req noveltrans.TranslationRequest, progress noveltrans.RetryFunc) (string, error)
}

func (t *Translator) Translate(ctx context.Context, req noveltrans.TranslationRequest, progress noveltrans.RetryFunc) (string, error) {
	return t.TranslateFn(ctx, req, progress)
}

package mock

import (
	"context"

	"github.com/mwielbut/noveltrans"
)

var _ noveltrans.Generator = (*Generator)(nil)

// Generator is a mock implementation of noveltrans.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

package coach

import (
	"context"

	"github.com/2beens/fitcoach/internal/quotes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=coach_test

// Generator produces the plan text for a goal and a free-text metrics description.
type Generator interface {
	Generate(ctx context.Context, goal, metrics string) (string, error)
}

type QuotePicker interface {
	RandomQuote() *quotes.Quote
}

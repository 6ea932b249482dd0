package repository

import "context"

// WordSource defines where random words come from
type WordSource interface {
	// RandomWord returns one raw, not yet normalized, word
	RandomWord(ctx context.Context) (string, error)
}

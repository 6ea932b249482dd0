package service

import (
	"context"
	"fmt"

	"hangman/internal/domain"
	"hangman/internal/repository"

	"go.uber.org/zap"
)

// WordService handles word-related business logic
type WordService struct {
	source   repository.WordSource
	fallback string
	logger   *zap.Logger
}

// NewWordService creates a new word service.
// An empty fallback means domain.DefaultFallback.
func NewWordService(source repository.WordSource, fallback string, logger *zap.Logger) *WordService {
	if fallback == "" {
		fallback = domain.DefaultFallback
	}
	return &WordService{
		source:   source,
		fallback: fallback,
		logger:   logger,
	}
}

// GetWord returns a random upper-cased word, or the fallback word on any failure
func (s *WordService) GetWord(ctx context.Context) domain.Word {
	word, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch word, using fallback",
			zap.Error(err),
			zap.String("fallback", s.fallback),
		)
		return domain.FallbackWord(s.fallback)
	}

	s.logger.Debug("Word fetched", zap.Int("length", word.Len()))
	return word
}

// fetch asks the source for one word. Panics from the source count as failures.
func (s *WordService) fetch(ctx context.Context) (word domain.Word, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("word source panicked: %v", r)
		}
	}()

	raw, err := s.source.RandomWord(ctx)
	if err != nil {
		return domain.Word{}, err
	}

	return domain.NewWord(raw), nil
}

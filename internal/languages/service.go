package languages

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCodeRequired    = errors.New("languages: language code is required")
	ErrUnknownLanguage = errors.New("languages: unknown language")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	if e.Code == "" {
		return "language not found"
	}
	return fmt.Sprintf("language %q not found", e.Code)
}

func (e *NotFoundError) Unwrap() error {
	return ErrUnknownLanguage
}

// Repository resolves languages by code.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
}

// Service exposes the language registry use cases.
type Service interface {
	ResolveByCode(ctx context.Context, code string) (*Language, error)
	List(ctx context.Context) ([]*Language, error)
	Default(ctx context.Context) (*Language, error)
}

type service struct {
	repo Repository
}

// NewService constructs a language registry backed by the supplied repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ResolveByCode resolves a language by its case-insensitive code.
func (s *service) ResolveByCode(ctx context.Context, code string) (*Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}
	lang, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, &NotFoundError{Code: code}
	}
	return lang, nil
}

// List returns every registered language.
func (s *service) List(ctx context.Context) ([]*Language, error) {
	return s.repo.List(ctx)
}

// Default returns the language flagged as the site default.
func (s *service) Default(ctx context.Context) (*Language, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, lang := range records {
		if lang != nil && lang.IsDefault {
			return lang, nil
		}
	}
	return nil, &NotFoundError{}
}

package promptda

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/promptda/promptda/internal/languages"
)

var (
	// ErrLanguageCodeRequired indicates language lookups require a non-empty code.
	ErrLanguageCodeRequired = errors.New("promptda: language code is required")
	// ErrUnknownLanguage indicates a lookup failed because the code is unknown.
	ErrUnknownLanguage = languages.ErrUnknownLanguage
)

// LanguageNotFoundError describes unknown language-code lookups and unwraps to
// ErrUnknownLanguage.
type LanguageNotFoundError struct {
	Code string
}

func (e *LanguageNotFoundError) Error() string {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return "promptda: language not found"
	}
	return fmt.Sprintf("promptda: language %q not found", code)
}

func (e *LanguageNotFoundError) Unwrap() error {
	return ErrUnknownLanguage
}

// LanguageInfo is the stable public language view.
type LanguageInfo struct {
	ID         uuid.UUID
	Code       string
	Display    string
	NativeName *string
	IsActive   bool
	IsDefault  bool
}

// LanguageService resolves language records through the public contract.
type LanguageService interface {
	ResolveByCode(ctx context.Context, code string) (LanguageInfo, error)
	List(ctx context.Context) ([]LanguageInfo, error)
	Default(ctx context.Context) (LanguageInfo, error)
}

type languageService struct {
	module *Module
}

func newLanguageService(m *Module) LanguageService {
	return &languageService{module: m}
}

func (s *languageService) ResolveByCode(ctx context.Context, code string) (LanguageInfo, error) {
	inner, err := s.inner()
	if err != nil {
		return LanguageInfo{}, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return LanguageInfo{}, ErrLanguageCodeRequired
	}

	lang, err := inner.ResolveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, languages.ErrUnknownLanguage) {
			return LanguageInfo{}, &LanguageNotFoundError{Code: code}
		}
		return LanguageInfo{}, err
	}
	return toLanguageInfo(lang), nil
}

func (s *languageService) List(ctx context.Context) ([]LanguageInfo, error) {
	inner, err := s.inner()
	if err != nil {
		return nil, err
	}

	records, err := inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LanguageInfo, 0, len(records))
	for _, lang := range records {
		if lang == nil {
			continue
		}
		out = append(out, toLanguageInfo(lang))
	}
	return out, nil
}

func (s *languageService) Default(ctx context.Context) (LanguageInfo, error) {
	inner, err := s.inner()
	if err != nil {
		return LanguageInfo{}, err
	}

	lang, err := inner.Default(ctx)
	if err != nil {
		if errors.Is(err, languages.ErrUnknownLanguage) {
			return LanguageInfo{}, &LanguageNotFoundError{}
		}
		return LanguageInfo{}, err
	}
	return toLanguageInfo(lang), nil
}

func (s *languageService) inner() (languages.Service, error) {
	if s == nil || s.module == nil || s.module.container == nil {
		return nil, errNilModule
	}
	svc := s.module.container.LanguageService()
	if svc == nil {
		return nil, errNilModule
	}
	return svc, nil
}

func toLanguageInfo(lang *languages.Language) LanguageInfo {
	return LanguageInfo{
		ID:         lang.ID,
		Code:       lang.Code,
		Display:    lang.Display,
		NativeName: cloneStringPtr(lang.NativeName),
		IsActive:   lang.IsActive,
		IsDefault:  lang.IsDefault,
	}
}

func cloneStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}

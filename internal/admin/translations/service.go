package translations

import (
	"context"
	"errors"
	"time"

	"github.com/promptda/promptda/internal/logging"
	"github.com/promptda/promptda/internal/settings"
	"github.com/promptda/promptda/pkg/interfaces"
)

// ErrRepositoryRequired indicates the service was constructed without a repository.
var ErrRepositoryRequired = errors.New("admintranslations: repository is required")

// AuditEvent describes an administrative change to the translation settings.
type AuditEvent struct {
	EntityType string
	EntityID   string
	Action     string
	OccurredAt time.Time
	Metadata   map[string]any
}

// AuditRecorder receives settings-change audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}

// Option mutates the service configuration.
type Option func(*Service)

// WithClock overrides the clock used for audit timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithAuditRecorder overrides the audit recorder dependency.
func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(s *Service) {
		s.audit = recorder
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithState attaches the shared runtime state; applied settings are pushed
// into it so request paths observe changes immediately.
func WithState(state *settings.State) Option {
	return func(s *Service) {
		s.state = state
	}
}

// Service persists translation settings, keeps the shared runtime state in
// sync, and emits audit records for every change.
type Service struct {
	repo   settings.Repository
	state  *settings.State
	audit  AuditRecorder
	logger interfaces.Logger
	clock  func() time.Time
}

// NewService constructs a translations admin service.
func NewService(repo settings.Repository, opts ...Option) *Service {
	svc := &Service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// GetSettings returns the stored translation settings.
func (s *Service) GetSettings(ctx context.Context) (settings.Settings, error) {
	if s.repo == nil {
		return settings.Settings{}, ErrRepositoryRequired
	}
	return s.repo.Get(ctx)
}

// ApplySettings stores translation settings, updates the runtime state, and
// records an audit entry.
func (s *Service) ApplySettings(ctx context.Context, cfg settings.Settings) error {
	if s.repo == nil {
		return ErrRepositoryRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	action := "translation_settings_updated"
	if _, err := s.repo.Get(ctx); err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			action = "translation_settings_created"
		} else {
			return err
		}
	}

	stored, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		return err
	}

	if s.state != nil {
		s.state.Apply(stored)
	}

	s.logger.Info("translation settings applied",
		"action", action,
		"translations_enabled", stored.TranslationsEnabled,
		"require_translations", stored.RequireTranslations,
		"strict_lookups", stored.StrictLookups,
	)
	s.recordAudit(ctx, AuditEvent{
		EntityType: "translation_settings",
		EntityID:   "global",
		Action:     action,
		OccurredAt: s.clock(),
		Metadata: map[string]any{
			"translations_enabled": stored.TranslationsEnabled,
			"require_translations": stored.RequireTranslations,
			"strict_lookups":       stored.StrictLookups,
		},
	})
	return nil
}

// Reset clears translation settings and restores the runtime state defaults.
func (s *Service) Reset(ctx context.Context) error {
	if s.repo == nil {
		return ErrRepositoryRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := s.repo.Delete(ctx); err != nil {
		return err
	}

	if s.state != nil {
		s.state.Apply(settings.Settings{})
	}

	s.logger.Info("translation settings reset")
	s.recordAudit(ctx, AuditEvent{
		EntityType: "translation_settings",
		EntityID:   "global",
		Action:     "translation_settings_deleted",
		OccurredAt: s.clock(),
	})
	return nil
}

func (s *Service) recordAudit(ctx context.Context, event AuditEvent) {
	if s.audit == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock()
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("audit record failed", "action", event.Action, "error", err)
	}
}

package settings

import (
	"context"
	"errors"
)

// ErrSettingsNotFound indicates translation settings have not been configured yet.
var ErrSettingsNotFound = errors.New("settings: not found")

// Settings capture the runtime translation toggles operators can flip without
// redeploying. StrictLookups mirrors the resolver's strict mode: when set,
// translation store failures surface instead of degrading to base copy.
type Settings struct {
	TranslationsEnabled bool
	RequireTranslations bool
	StrictLookups       bool
}

// Repository persists translation settings and emits change notifications.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
	Delete(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeType enumerates settings change events.
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent reports settings mutations to subscribers.
type ChangeEvent struct {
	Type     ChangeType
	Settings Settings
}

func newChangeEvent(changeType ChangeType, settings Settings) ChangeEvent {
	return ChangeEvent{Type: changeType, Settings: settings}
}

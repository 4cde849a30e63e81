// Package settings holds the persisted practice thresholds and sound toggle.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/prefs"
	"github.com/alexanderramin/leettomato/internal/repository"
)

// StorageKey is the kv namespace of the settings record.
const StorageKey = "leettomato-settings"

type Key string

const (
	KeyDesignThresholdMin Key = "designThresholdMin"
	KeyCodingThresholdMin Key = "codingThresholdMin"
	KeySoundEnabled       Key = "soundEnabled"
)

// Keys lists every setting in display order.
var Keys = []Key{KeyDesignThresholdMin, KeyCodingThresholdMin, KeySoundEnabled}

var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting value")
)

// Service is the process-wide settings holder. It loads once at construction
// and writes the full merged object on every update.
type Service struct {
	store  *prefs.Store[domain.AppSettings]
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.AppSettings
}

// NewService loads settings from kv, back-filling missing keys from defaults.
func NewService(ctx context.Context, kv repository.KVRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store := prefs.NewStore(kv, StorageKey, domain.DefaultSettings, logger)
	return &Service{
		store:   store,
		logger:  logger,
		current: store.Load(ctx),
	}
}

// Get returns the current settings.
func (s *Service) Get() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SoundEnabled reports the current sound toggle.
func (s *Service) SoundEnabled() bool {
	return s.Get().SoundEnabled
}

// Update sets one key and persists the whole object. Minute values are not
// clamped here; callers clamp user input with ClampMinutes. The in-memory
// value is updated even when persisting fails; the persistence error is
// logged and returned.
func (s *Service) Update(ctx context.Context, key Key, value any) (domain.AppSettings, error) {
	s.mu.Lock()
	next := s.current
	if err := apply(&next, key, value); err != nil {
		s.mu.Unlock()
		return next, err
	}
	s.current = next
	s.mu.Unlock()

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.WarnContext(ctx, "settings_save_failed", "key", string(key), "error", err.Error())
		return next, fmt.Errorf("saving settings: %w", err)
	}
	return next, nil
}

// Replace persists a whole settings object, as submitted by the settings form.
func (s *Service) Replace(ctx context.Context, next domain.AppSettings) error {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	if err := s.store.Save(ctx, next); err != nil {
		s.logger.WarnContext(ctx, "settings_save_failed", "error", err.Error())
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func apply(s *domain.AppSettings, key Key, value any) error {
	switch key {
	case KeyDesignThresholdMin, KeyCodingThresholdMin:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("%w: %s expects minutes, got %T", ErrInvalidValue, key, value)
		}
		if key == KeyDesignThresholdMin {
			s.DesignThresholdMin = n
		} else {
			s.CodingThresholdMin = n
		}
	case KeySoundEnabled:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects true/false, got %T", ErrInvalidValue, key, value)
		}
		s.SoundEnabled = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// ClampMinutes bounds a threshold to [1,120] minutes.
func ClampMinutes(n int) int {
	if n < domain.MinThresholdMin {
		return domain.MinThresholdMin
	}
	if n > domain.MaxThresholdMin {
		return domain.MaxThresholdMin
	}
	return n
}

// ParseValue converts user text for key into a typed value. Minute values
// are clamped.
func ParseValue(key Key, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch key {
	case KeyDesignThresholdMin, KeyCodingThresholdMin:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a whole number of minutes", ErrInvalidValue, key)
		}
		return ClampMinutes(n), nil
	case KeySoundEnabled:
		switch strings.ToLower(raw) {
		case "on", "yes":
			return true, nil
		case "off", "no":
			return false, nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// ResolveKey accepts a key in its stored form or a dashed/underscored alias
// ("design", "design-threshold", "sound").
func ResolveKey(name string) (Key, error) {
	n := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name)))
	switch n {
	case "designthresholdmin", "designthreshold", "design":
		return KeyDesignThresholdMin, nil
	case "codingthresholdmin", "codingthreshold", "coding":
		return KeyCodingThresholdMin, nil
	case "soundenabled", "sound":
		return KeySoundEnabled, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Value returns the current value of key formatted for display.
func Value(s domain.AppSettings, key Key) string {
	switch key {
	case KeyDesignThresholdMin:
		return strconv.Itoa(s.DesignThresholdMin)
	case KeyCodingThresholdMin:
		return strconv.Itoa(s.CodingThresholdMin)
	case KeySoundEnabled:
		return strconv.FormatBool(s.SoundEnabled)
	}
	return ""
}

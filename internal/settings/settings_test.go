package settings

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/repository"
	"github.com/alexanderramin/leettomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKV(t *testing.T) repository.KVRepo {
	t.Helper()
	return repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
}

func TestNewService_DefaultsWhenNothingStored(t *testing.T) {
	svc := NewService(context.Background(), newKV(t), nil)

	got := svc.Get()
	assert.Equal(t, 10, got.DesignThresholdMin)
	assert.Equal(t, 20, got.CodingThresholdMin)
	assert.False(t, got.SoundEnabled)
	assert.Equal(t, 10*time.Minute, got.DesignThreshold())
	assert.Equal(t, 20*time.Minute, got.CodingThreshold())
}

func TestNewService_MissingSoundKeyDefaultsToFalse(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `{"designThresholdMin":15,"codingThresholdMin":30}`))

	got := NewService(ctx, kv, nil).Get()
	assert.False(t, got.SoundEnabled)
	assert.Equal(t, 15, got.DesignThresholdMin)
	assert.Equal(t, 30, got.CodingThresholdMin)
}

func TestNewService_MalformedRecordUsesDefaults(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `not json`))

	assert.Equal(t, domain.DefaultSettings(), NewService(ctx, kv, nil).Get())
}

func TestUpdate_WritesFullMergedObject(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `{"designThresholdMin":15}`))
	svc := NewService(ctx, kv, nil)

	_, err := svc.Update(ctx, KeySoundEnabled, true)
	require.NoError(t, err)

	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"designThresholdMin":15,"codingThresholdMin":20,"soundEnabled":true}`, raw)

	reloaded := NewService(ctx, kv, nil).Get()
	assert.True(t, reloaded.SoundEnabled)
	assert.Equal(t, 15, reloaded.DesignThresholdMin)
}

func TestUpdate_DoesNotClamp(t *testing.T) {
	svc := NewService(context.Background(), newKV(t), nil)

	got, err := svc.Update(context.Background(), KeyCodingThresholdMin, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, got.CodingThresholdMin)
}

func TestUpdate_RejectsWrongTypeAndUnknownKey(t *testing.T) {
	svc := NewService(context.Background(), newKV(t), nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, KeyDesignThresholdMin, "12")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = svc.Update(ctx, Key("theme"), "dark")
	assert.ErrorIs(t, err, ErrUnknownKey)

	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestUpdate_PersistFailureKeepsInMemoryValue(t *testing.T) {
	kv := &testutil.FailingKV{Inner: newKV(t), FailSet: true}
	svc := NewService(context.Background(), kv, nil)

	_, err := svc.Update(context.Background(), KeyDesignThresholdMin, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrInjected)
	assert.Equal(t, 25, svc.Get().DesignThresholdMin)
}

func TestReplace_PersistsWholeObject(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()
	svc := NewService(ctx, kv, nil)

	next := domain.AppSettings{DesignThresholdMin: 5, CodingThresholdMin: 45, SoundEnabled: true}
	require.NoError(t, svc.Replace(ctx, next))
	assert.Equal(t, next, NewService(ctx, kv, nil).Get())
}

func TestClampMinutes(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{60, 60},
		{120, 120},
		{121, 120},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampMinutes(tt.in), "ClampMinutes(%d)", tt.in)
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KeyDesignThresholdMin, " 300 ")
	require.NoError(t, err)
	assert.Equal(t, 120, v)

	v, err = ParseValue(KeySoundEnabled, "on")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = ParseValue(KeySoundEnabled, "false")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = ParseValue(KeyCodingThresholdMin, "ten")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseValue(KeySoundEnabled, "loud")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestResolveKey_Aliases(t *testing.T) {
	for name, want := range map[string]Key{
		"designThresholdMin": KeyDesignThresholdMin,
		"design-threshold":   KeyDesignThresholdMin,
		"coding":             KeyCodingThresholdMin,
		"sound_enabled":      KeySoundEnabled,
		"SOUND":              KeySoundEnabled,
	} {
		got, err := ResolveKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ResolveKey("volume")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

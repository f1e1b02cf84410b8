package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/chores/internal/logging"
	"github.com/Makepad-fr/chores/internal/model"
	"github.com/Makepad-fr/chores/internal/store"
	"github.com/Makepad-fr/chores/internal/store/jsonstore"
)

type brokenStore struct{ store.Storage }

func (brokenStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk on fire") }
func (brokenStore) Set(string, []byte) error         { return errors.New("disk on fire") }

func TestOnStart_EmptyStoreYieldsDefaults(t *testing.T) {
	st := jsonstore.New(filepath.Join(t.TempDir(), "chores.json"))
	assert.Equal(t, model.DefaultState(), OnStart(context.Background(), st, logging.Discard()))
}

func TestOnStart_CorruptSlotFallsBackAndWarns(t *testing.T) {
	st := jsonstore.New(filepath.Join(t.TempDir(), "chores.json"))
	require.NoError(t, st.Set(store.AppKey, []byte("{nope")))

	var buf bytes.Buffer
	s := OnStart(context.Background(), st, logging.New("info", "json", &buf))
	assert.Equal(t, model.DefaultState(), s)
	assert.Contains(t, buf.String(), "persisted state unreadable")
}

func TestOnStart_StoreErrorFallsBack(t *testing.T) {
	var buf bytes.Buffer
	s := OnStart(context.Background(), brokenStore{}, logging.New("info", "json", &buf))
	assert.Equal(t, model.DefaultState(), s)
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestLifecycle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, driver := range store.Drivers {
		t.Run(driver, func(t *testing.T) {
			st, err := store.Open(driver, filepath.Join(t.TempDir(), "slots"))
			require.NoError(t, err)
			defer st.Close()

			want := model.State{Chores: []model.Chore{
				{Name: "Fenster", Due: "Saturday", Owner: model.Johannes},
				{Name: "Bad", Due: "Tomorrow", Owner: model.Linus},
			}}
			require.NoError(t, OnShutdown(ctx, st, logging.Discard(), want))
			assert.Equal(t, want, OnStart(ctx, st, logging.Discard()))

			// last writer wins
			require.NoError(t, OnShutdown(ctx, st, logging.Discard(), model.DefaultState()))
			assert.Equal(t, model.DefaultState(), OnStart(ctx, st, logging.Discard()))
		})
	}
}

func TestOnShutdown_Errors(t *testing.T) {
	err := OnShutdown(context.Background(), brokenStore{}, logging.Discard(), model.DefaultState())
	assert.ErrorContains(t, err, "save state")

	st := jsonstore.New(filepath.Join(t.TempDir(), "chores.json"))
	bad := model.State{Chores: []model.Chore{{Name: "x", Owner: model.Owner(42)}}}
	err = OnShutdown(context.Background(), st, logging.Discard(), bad)
	assert.ErrorContains(t, err, "encode state")
}

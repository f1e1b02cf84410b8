package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "chores.json"))
	v, ok, err := s.Get("app")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_SetGetDelete(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "chores.json")
	s := New(p)

	require.NoError(t, s.Set("app", []byte(`{"chores":[]}`)))
	require.NoError(t, s.Set("other", []byte("x")))

	// a fresh handle sees what the first one wrote
	v, ok, err := New(p).Get("app")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"chores":[]}`, string(v))

	require.NoError(t, s.Delete("app"))
	_, ok, err = s.Get("app")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", string(v))

	require.NoError(t, s.Delete("missing"))
	_, err = os.Stat(p + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chores.json")
	require.NoError(t, os.WriteFile(p, []byte("{oops"), 0o644))
	s := New(p)

	_, _, err := s.Get("app")
	assert.ErrorContains(t, err, "json unmarshal")

	// saving replaces the broken file
	require.NoError(t, s.Set("app", []byte("v")))
	v, ok, err := s.Get("app")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(v))
}

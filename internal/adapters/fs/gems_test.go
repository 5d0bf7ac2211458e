package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/core/domain"
)

func TestSource_LoadGems(t *testing.T) {
	t.Run("with lockfile", func(t *testing.T) {
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{
			"Gemfile":      "source 'https://rubygems.org'\ngem 'rack'\n",
			"Gemfile.lock": "GEM\n  specs:\n    rack (2.2.8)\n",
		})

		gemfile, lockfile, err := fs.NewSource().LoadGems(dir)
		require.NoError(t, err)
		assert.Equal(t, "Gemfile", gemfile.Name)
		assert.Contains(t, gemfile.Content, "gem 'rack'")
		require.NotNil(t, lockfile)
		assert.Equal(t, "Gemfile.lock", lockfile.Name)
		assert.Contains(t, lockfile.Content, "rack (2.2.8)")
	})

	t.Run("without lockfile", func(t *testing.T) {
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{"Gemfile": "gem 'rack'\n"})

		_, lockfile, err := fs.NewSource().LoadGems(dir)
		require.NoError(t, err)
		assert.Nil(t, lockfile)
	})

	t.Run("without gemfile", func(t *testing.T) {
		_, _, err := fs.NewSource().LoadGems(t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNoManifests.Error())
	})
}

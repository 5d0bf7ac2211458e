package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestOrderManifests_ReferencedFirst(t *testing.T) {
	refs := map[string][]string{
		"a.in": {"b.in"},
	}

	order, err := domain.OrderManifests([]string{"a.in", "b.in"}, refs)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.in", "a.in"}, order)
}

func TestOrderManifests_IgnoresReferencesOutsideSet(t *testing.T) {
	refs := map[string][]string{
		"dev.in":  {"base.in", "extra/lint.in"},
		"prod.in": {"base.in"},
	}

	order, err := domain.OrderManifests([]string{"prod.in", "dev.in"}, refs)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod.in", "dev.in"}, order)
}

func TestOrderManifests_PassesKeepInputOrder(t *testing.T) {
	refs := map[string][]string{
		"c.in": {"a.in", "b.in"},
		"d.in": {"c.in"},
	}

	order, err := domain.OrderManifests([]string{"d.in", "c.in", "b.in", "a.in"}, refs)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.in", "a.in", "c.in", "d.in"}, order)
}

func TestOrderManifests_SelfReferenceIgnored(t *testing.T) {
	refs := map[string][]string{
		"a.in": {"a.in"},
	}

	order, err := domain.OrderManifests([]string{"a.in"}, refs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.in"}, order)
}

func TestOrderManifests_Deduplicates(t *testing.T) {
	order, err := domain.OrderManifests([]string{"a.in", "b.in", "a.in"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.in", "b.in"}, order)
}

func TestOrderManifests_Empty(t *testing.T) {
	order, err := domain.OrderManifests(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestOrderManifests_Cycle(t *testing.T) {
	refs := map[string][]string{
		"a.in": {"b.in"},
		"b.in": {"a.in"},
		"c.in": nil,
	}

	_, err := domain.OrderManifests([]string{"c.in", "a.in", "b.in"}, refs)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCircularManifestReference.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	assert.Equal(t, "a.in -> b.in -> a.in", zErr.Metadata()["cycle"])
}

func TestManifestGraph_ReferencesAreCopied(t *testing.T) {
	refs := map[string][]string{"a.in": {"b.in"}}
	g := domain.NewManifestGraph(refs)

	refs["a.in"][0] = "mutated.in"

	assert.Equal(t, []string{"b.in"}, g.References("a.in"))
}

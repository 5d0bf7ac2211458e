package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/relock/internal/core/domain"
)

func TestUnlockSet_Add(t *testing.T) {
	target := domain.NewName("rails")
	set := domain.NewUnlockSet(target)

	added := set.Add(domain.NewName("rack"), domain.NewName("Rails"), domain.RuntimeDependencyName, domain.NewName("rack"))
	assert.Equal(t, []domain.Name{domain.NewName("rack")}, added)
	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains(target))
	assert.False(t, set.Contains(domain.RuntimeDependencyName))
	assert.Equal(t, target, set.Target())
}

func TestUnlockSet_GrowsMonotonically(t *testing.T) {
	set := domain.NewUnlockSet(domain.NewName("rails"))

	set.Add(domain.NewName("rack"))
	first := set.Names()

	set.Add(domain.NewName("actionpack"), domain.NewName("rack"))
	second := set.Names()

	assert.Equal(t, first, second[:len(first)])
	assert.Equal(t, []domain.Name{domain.NewName("rack"), domain.NewName("actionpack")}, second)
}

func TestUnlockSet_NamesIsACopy(t *testing.T) {
	set := domain.NewUnlockSet(domain.NewName("rails"))
	set.Add(domain.NewName("rack"))

	names := set.Names()
	names[0] = domain.NewName("other")

	assert.True(t, set.Contains(domain.NewName("rack")))
	assert.Equal(t, domain.NewName("rack"), set.Names()[0])
}

func TestUnlockSet_RejectsZeroName(t *testing.T) {
	set := domain.NewUnlockSet(domain.NewName("rails"))
	assert.Empty(t, set.Add(domain.Name{}))
	assert.Equal(t, 0, set.Len())
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Django", "django"},
		{"zope.interface", "zope-interface"},
		{"Flask_SQLAlchemy", "flask-sqlalchemy"},
		{"a-_.b", "a-b"},
		{"  requests ", "requests"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeName(tt.in))
		})
	}
}

func TestName_Equality(t *testing.T) {
	assert.Equal(t, domain.NewName("Zope.Interface"), domain.NewName("zope_interface"))
	assert.NotEqual(t, domain.NewName("ruby"), domain.RuntimeDependencyName)
}

func TestName_Zero(t *testing.T) {
	var n domain.Name
	assert.True(t, n.IsZero())
	assert.Empty(t, n.String())
	assert.False(t, domain.NewName("x").IsZero())
}

func TestName_Text(t *testing.T) {
	text, err := domain.NewName("Foo_Bar").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "foo-bar", string(text))

	var n domain.Name
	require.NoError(t, n.UnmarshalText([]byte("FOO.bar")))
	assert.Equal(t, domain.NewName("foo-bar"), n)
}

func TestName_Spelling(t *testing.T) {
	typed := domain.NewName("red_cloth_gem")
	assert.Equal(t, "red_cloth_gem", typed.Spelling())

	assert.Equal(t, "red_cloth_gem", domain.NewName("Red-Cloth-Gem").Spelling(), "first spelling is kept")

	spelled := domain.NewSpelledName("Red_Cloth_Gem")
	assert.Equal(t, typed, spelled)
	assert.Equal(t, "Red_Cloth_Gem", typed.Spelling(), "manifest spelling wins")
	assert.Equal(t, "red-cloth-gem", typed.String())

	var zero domain.Name
	assert.Empty(t, zero.Spelling())
}

package pipcompile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/pipcompile"
	"go.trai.ch/relock/internal/core/domain"
)

func TestReplacer_Replace(t *testing.T) {
	tests := []struct {
		name    string
		content string
		old     string
		new     string
		want    string
	}{
		{
			name:    "pinned",
			content: "django==4.2.1\nflask\n",
			old:     "==4.2.1",
			new:     "==4.2.7",
			want:    "django==4.2.7\nflask\n",
		},
		{
			name:    "bare name",
			content: "Django\n",
			old:     "",
			new:     "==4.2.7",
			want:    "Django==4.2.7\n",
		},
		{
			name:    "keeps extras marker and comment",
			content: "django[argon2] >= 4.0 ; python_version >= '3.8'  # web\n",
			old:     ">=4.0",
			new:     ">=4.2",
			want:    "django[argon2]>=4.2 ; python_version >= '3.8'  # web\n",
		},
		{
			name:    "comment after bare name",
			content: "django  # web\n",
			old:     "",
			new:     "==4.2.7",
			want:    "django==4.2.7 # web\n",
		},
		{
			name:    "normalized name",
			content: "Zope.Interface==5.0\n",
			old:     "==5.0",
			new:     "==6.0",
			want:    "Zope.Interface==6.0\n",
		},
	}

	r := pipcompile.NewReplacer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := domain.NewName("django")
			if tt.name == "normalized name" {
				name = domain.NewName("zope-interface")
			}
			got, err := r.Replace(tt.content, name, tt.old, tt.new)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplacer_Replace_NotFound(t *testing.T) {
	_, err := pipcompile.NewReplacer().Replace("flask==2.0\n", domain.NewName("django"), "==4.2.1", "==4.2.7")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDependencyNotFound.Error())
}

func TestReplacer_Replace_OnlyMatchingRequirement(t *testing.T) {
	_, err := pipcompile.NewReplacer().Replace("django==4.2.1\n", domain.NewName("django"), "==3.0", "==4.2.7")
	require.Error(t, err)
}

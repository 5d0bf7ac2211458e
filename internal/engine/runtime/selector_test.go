package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/runtime"
	"go.uber.org/mock/gomock"
)

var testRuntime = domain.RuntimeConfig{
	Supported: []string{"3.12.4", "3.11.9", "3.10.14", "3.9.19", "3.8.19"},
	Default:   "3.8.19",
	Fallback:  "2.7.18",
}

func newSelector(t *testing.T, user, imputed []string) *runtime.Selector {
	t.Helper()
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockRuntimeRequirementParser(ctrl)
	parser.EXPECT().UserSpecified(gomock.Any()).Return(user).AnyTimes()
	parser.EXPECT().Imputed(gomock.Any()).Return(imputed).AnyTimes()
	return runtime.NewSelector(parser, testRuntime)
}

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		imputed []string
		want    runtime.Selection
	}{
		{
			name: "default without constraints",
			want: runtime.Selection{Version: "3.8.19"},
		},
		{
			name: "user pin wildcard",
			user: []string{"==3.10.*"},
			want: runtime.Selection{Version: "3.10.14", UserSpecified: true},
		},
		{
			name: "user range picks newest",
			user: []string{">=3.8,<3.12"},
			want: runtime.Selection{Version: "3.11.9", UserSpecified: true},
		},
		{
			name:    "user wins over imputed",
			user:    []string{"~=3.9.0"},
			imputed: []string{">=3.11"},
			want:    runtime.Selection{Version: "3.9.19", UserSpecified: true},
		},
		{
			name:    "unsatisfiable user falls through to imputed",
			user:    []string{"==3.6.*"},
			imputed: []string{"<3.10"},
			want:    runtime.Selection{Version: "3.9.19"},
		},
		{
			name:    "all imputed constraints apply",
			imputed: []string{">=3.9", "<3.11"},
			want:    runtime.Selection{Version: "3.10.14"},
		},
		{
			name:    "unsatisfiable imputed uses default",
			imputed: []string{"<3"},
			want:    runtime.Selection{Version: "3.8.19"},
		},
		{
			name:    "unparseable marker is ignored",
			imputed: []string{"in3.63.7", "<3.12"},
			want:    runtime.Selection{Version: "3.11.9"},
		},
		{
			name: "alternatives",
			user: []string{"==3.9.* || ==3.11.*"},
			want: runtime.Selection{Version: "3.11.9", UserSpecified: true},
		},
		{
			name: "poetry caret",
			user: []string{"^3.10"},
			want: runtime.Selection{Version: "3.12.4", UserSpecified: true},
		},
		{
			name: "exclusion",
			user: []string{">=3.10,!=3.12.*"},
			want: runtime.Selection{Version: "3.11.9", UserSpecified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newSelector(t, tt.user, tt.imputed).Select(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_Deterministic(t *testing.T) {
	s := newSelector(t, []string{">=3.9"}, []string{"<3.12"})

	first, err := s.Select(nil)
	require.NoError(t, err)
	for range 5 {
		again, err := s.Select(nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSelector_InvalidUserConstraint(t *testing.T) {
	_, err := newSelector(t, []string{"~=3"}, nil).Select(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidRequirement.Error())
}

func TestSelector_Fallback(t *testing.T) {
	assert.Equal(t, "2.7.18", newSelector(t, nil, nil).Fallback())
}

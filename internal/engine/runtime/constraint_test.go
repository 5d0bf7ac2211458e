package runtime_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/engine/runtime"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		req   string
		match []string
		miss  []string
	}{
		{req: "~=3.9", match: []string{"3.9.0", "3.12.4"}, miss: []string{"3.8.19", "4.0.0"}},
		{req: "~=3.9.2", match: []string{"3.9.2", "3.9.19"}, miss: []string{"3.9.1", "3.10.0"}},
		{req: "==3.11.*", match: []string{"3.11.0", "3.11.9"}, miss: []string{"3.10.14", "3.12.0"}},
		{req: "===3.8.19", match: []string{"3.8.19"}, miss: []string{"3.8.18"}},
		{req: "!=3.10.*", match: []string{"3.9.19", "3.11.9"}, miss: []string{"3.10.14"}},
		{req: ">= 3.8, < 3.10", match: []string{"3.8.19", "3.9.0"}, miss: []string{"3.10.0", "3.7.9"}},
		{req: "3.9", match: []string{"3.9.0"}, miss: []string{"3.10.0"}},
		{req: "<3.8 || >=3.12", match: []string{"2.7.18", "3.12.4"}, miss: []string{"3.10.14"}},
	}

	for _, tt := range tests {
		t.Run(tt.req, func(t *testing.T) {
			r, err := runtime.ParseRequirement(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.req, r.String())
			for _, v := range tt.match {
				assert.True(t, r.Check(semver.MustParse(v)), v)
			}
			for _, v := range tt.miss {
				assert.False(t, r.Check(semver.MustParse(v)), v)
			}
		})
	}
}

func TestParseRequirement_Invalid(t *testing.T) {
	for _, req := range []string{"", "~=3", "~=a.b", ">=banana"} {
		_, err := runtime.ParseRequirement(req)
		assert.Error(t, err, req)
	}
}

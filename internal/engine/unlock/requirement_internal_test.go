package unlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnconstrained(t *testing.T) {
	for _, req := range []string{"", " ", ">= 0", ">=0", ">= 0.0"} {
		assert.True(t, isUnconstrained(req), req)
	}
	for _, req := range []string{">= 0.1", "~> 1.0", "= 0", "> 0"} {
		assert.False(t, isUnconstrained(req), req)
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version     string
		requirement string
		want        bool
	}{
		{"7.1.0", ">= 7.0", true},
		{"7.1.0", "= 7.1.0", true},
		{"7.1.0", "7.1.0", true},
		{"7.1.0", "~> 7.0", true},
		{"8.0.0", "~> 7.0", false},
		{"2.2.9", "~> 2.2.3", true},
		{"2.3.0", "~> 2.2.3", false},
		{"2.2.8", "~> 2.0, >= 2.2.0", true},
		{"1.0.0", "!= 1.0.0", false},
		{"7.1.0", "wat", false},
		{"6.1.7.2", "~> 6.1.7", true},
		{"6.1.7.2", ">= 6.0", true},
		{"7.0.8.1", "~> 7.0.8.0", true},
		{"7.0.8.1", "< 7.0.8.2", true},
		{"7.0.8.1", "= 7.0.8", false},
		{"7.0", "= 7.0.0.0", true},
		{"1.0.0.rc1", ">= 1.0.0", false},
		{"1.0.0.rc1", "> 0.9", true},
		{"1.0.0-rc1", "< 1.0", true},
		{"", ">= 0", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, satisfies(tt.version, tt.requirement), "%s %s", tt.version, tt.requirement)
	}
}

func TestGemVersion_Compare(t *testing.T) {
	ordered := []string{"0.9", "1.0.0.a", "1.0.0.beta2", "1.0.0.rc1", "1.0", "1.0.0.1", "1.0.1", "1.10", "2"}
	for i := 1; i < len(ordered); i++ {
		lo, ok := parseGemVersion(ordered[i-1])
		assert.True(t, ok, ordered[i-1])
		hi, ok := parseGemVersion(ordered[i])
		assert.True(t, ok, ordered[i])
		assert.Equal(t, -1, lo.compare(hi), "%s < %s", ordered[i-1], ordered[i])
		assert.Equal(t, 1, hi.compare(lo), "%s > %s", ordered[i], ordered[i-1])
	}
}

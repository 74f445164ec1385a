package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "traveler", want: "Traveler"},
		{in: " COMMUNITY ", want: "Community"},
		{in: "Traveler", want: "Traveler"},
		{in: "admin", want: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeType(tt.in))
		})
	}
}

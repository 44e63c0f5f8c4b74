package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerCommand(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{"unset", "", nil},
		{"blank", "   \t ", nil},
		{"binary", "cat", []string{"cat"}},
		{"with args", "  less -R  ", []string{"less", "-R"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PagerEnv, tt.env)
			got := pagerCommand()
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

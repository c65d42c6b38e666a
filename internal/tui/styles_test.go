package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStylesNumbers(t *testing.T) {
	for _, theme := range []string{"dark", "light", "auto"} {
		s := NewStyles(theme)
		for i := 1; i < len(s.Numbers); i++ {
			assert.NotEmpty(t, s.Numbers[i].GetForeground(), "theme %s number %d has no color", theme, i)
		}
	}
}

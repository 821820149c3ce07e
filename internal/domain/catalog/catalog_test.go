package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("normalizes name to title case", func(t *testing.T) {
		c, err := NewCategory("network issues")
		require.NoError(t, err)
		assert.Equal(t, "Network Issues", c.Name())
		assert.True(t, c.IsActive())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		c, err := NewCategory("  hardware  ")
		require.NoError(t, err)
		assert.Equal(t, "Hardware", c.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("   ")
		assert.Error(t, err)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("a", 101))
		assert.Error(t, err)
	})
}

func TestCategory_Rename(t *testing.T) {
	c, err := NewCategory("hardware")
	require.NoError(t, err)

	require.NoError(t, c.Rename("office software"))
	assert.Equal(t, "Office Software", c.Name())

	assert.Error(t, c.Rename(""))
	assert.Equal(t, "Office Software", c.Name())
}

func TestCategory_ActivateDeactivate(t *testing.T) {
	c, err := NewCategory("hardware")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestNewPriority(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewPriority("Urgent", 0)
		require.NoError(t, err)
		assert.Equal(t, "Urgent", p.Name())
		assert.Equal(t, 0, p.Rank())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewPriority("", 1)
		assert.Error(t, err)
	})

	t.Run("rejects negative rank", func(t *testing.T) {
		_, err := NewPriority("Low", -1)
		assert.Error(t, err)
	})
}

func TestPriority_Update(t *testing.T) {
	p, err := NewPriority("Normal", 2)
	require.NoError(t, err)

	require.NoError(t, p.Update("Medium", 3))
	assert.Equal(t, "Medium", p.Name())
	assert.Equal(t, 3, p.Rank())

	assert.Error(t, p.Update("", 1))
	assert.Error(t, p.Update("High", -2))
}

package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid input", func(t *testing.T) {
		c, err := NewCustomer("  Ana López ", "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ana López", c.Name)
		assert.Equal(t, "ana@example.com", c.Email)
		assert.True(t, c.IsNew())
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		c, err := NewCustomer("", "ana@example.com")
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		c, err := NewCustomer("Ana", "not-an-email")
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "Invalid email format")
	})
}

func TestCustomer_Update(t *testing.T) {
	c, err := NewCustomer("Ana", "ana@example.com")
	require.NoError(t, err)
	created := c.CreatedAt

	require.NoError(t, c.Update("Ana María", "ana.maria@example.com"))
	assert.Equal(t, "Ana María", c.Name)
	assert.Equal(t, created, c.CreatedAt)

	assert.Error(t, c.Update("Ana", ""))
	assert.Equal(t, "Ana María", c.Name, "failed update leaves fields untouched")
}

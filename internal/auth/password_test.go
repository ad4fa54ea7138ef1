package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextPasswords(t *testing.T) {
	p := NewPasswords(false)

	stored, err := p.Prepare("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, p.Matches("pw", stored))
	assert.False(t, p.Matches("wrong", stored))
	assert.False(t, p.Matches("", stored))
}

func TestHashedPasswords(t *testing.T) {
	p := NewPasswords(true)

	stored, err := p.Prepare("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored)
	assert.True(t, p.Matches("pw", stored))
	assert.False(t, p.Matches("wrong", stored))
	assert.False(t, p.Matches("pw", "pw"))
}

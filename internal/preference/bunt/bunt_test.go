package bunt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerPreference(t *testing.T) {
	ctx := context.Background()
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	alice := s.For("alice")
	bob := s.For("bob")

	v, err := alice.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, alice.Save(ctx, "ar"))

	v, err = alice.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ar", v)

	v, err = bob.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v, "preferences are scoped per owner")

	require.NoError(t, alice.Save(ctx, "en"))
	v, err = s.For("alice").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", v)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "alice:suhail-language", key("alice"))
}

func TestClosedStore(t *testing.T) {
	s, err := (&Config{}).New()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.For("alice").Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.For("alice").Save(context.Background(), "ar"))
}

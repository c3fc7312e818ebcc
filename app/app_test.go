package app

import (
	"context"
	"testing"

	"github.com/jekabolt/sheel/config"
	"github.com/jekabolt/sheel/internal/listing"
	"github.com/jekabolt/sheel/internal/preference/bunt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease(t *testing.T) {
	ctx := context.Background()
	prefs, err := bunt.Open(":memory:")
	require.NoError(t, err)

	a := New(&config.Config{})
	a.prefs = prefs
	a.submitter = listing.NewSubmitter(&listing.Config{MaxSubmissions: 1}, nil, nil)

	a.release(ctx)
	assert.Nil(t, a.prefs)
	assert.Nil(t, a.submitter)

	_, err = prefs.For("owner-1").Load(ctx)
	assert.Error(t, err, "preferences db is closed")

	a.release(ctx)
}

func TestStopWithoutStart(t *testing.T) {
	a := New(&config.Config{})
	a.Stop(context.Background())

	select {
	case <-a.Done():
	default:
		t.Fatal("done is not closed")
	}
}

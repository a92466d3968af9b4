package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/internal/repository/cache"
)

func TestWrapRoundTrip(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	envelope, err := cache.Wrap(payload{Name: "x"}, time.Minute)
	require.NoError(t, err)
	assert.False(t, envelope.IsLogicalExpired())

	var got payload
	require.NoError(t, json.Unmarshal(envelope.Data, &got))
	assert.Equal(t, "x", got.Name)
}

func TestIsLogicalExpired(t *testing.T) {
	envelope, err := cache.Wrap("v", -time.Second)
	require.NoError(t, err)
	assert.True(t, envelope.IsLogicalExpired())
}

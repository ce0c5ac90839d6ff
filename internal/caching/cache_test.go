package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_BuildsOnce(t *testing.T) {
	var c Cache
	calls := 0
	create := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	first, err := c.GetOrCreate("key", time.Hour, create)
	require.NoError(t, err)
	second, err := c.GetOrCreate("key", time.Hour, create)
	require.NoError(t, err)

	assert.Equal(t, "value", first)
	assert.Equal(t, "value", second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestGetOrCreate_ErrorsAreNotStored(t *testing.T) {
	var c Cache
	boom := errors.New("boom")

	_, err := c.GetOrCreate("key", time.Hour, func() (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	value, err := c.GetOrCreate("key", time.Hour, func() (interface{}, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestGetOrCreate_ExpiredEntryIsRebuilt(t *testing.T) {
	var c Cache
	calls := 0
	create := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	_, err := c.GetOrCreate("key", -time.Second, create)
	require.NoError(t, err)
	value, err := c.GetOrCreate("key", time.Hour, create)
	require.NoError(t, err)

	assert.Equal(t, 2, value)
	assert.Equal(t, 1, c.Len())
}

package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{Name: "test", MaxRequests: 1, Timeout: time.Minute, FailureThreshold: 2})
	boom := errors.New("boom")
	calls := 0
	fail := func() (int, error) {
		calls++
		return 0, boom
	}

	_, err := Execute(cb, fail)
	assert.ErrorIs(t, err, boom)
	_, err = Execute(cb, fail)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "open", cb.State())

	_, err = Execute(cb, fail)
	assert.True(t, IsOpen(err))
	assert.Equal(t, 2, calls)
}

func TestExecute_ReturnsValue(t *testing.T) {
	cb := New(DefaultConfig("test"))

	got, err := Execute(cb, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, "closed", cb.State())
	assert.False(t, IsOpen(errors.New("other")))
}

func TestExecute_HalfOpenClosesOnSuccess(t *testing.T) {
	cb := New(Config{Name: "test", MaxRequests: 1, Timeout: 10 * time.Millisecond, FailureThreshold: 1})

	_, err := Execute(cb, func() (int, error) { return 0, errors.New("boom") })
	require.Error(t, err)
	assert.Equal(t, "open", cb.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "half-open", cb.State())

	got, err := Execute(cb, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, "closed", cb.State())
}

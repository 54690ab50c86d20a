package gemini_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailytoon-backend/internal/gemini"
)

func TestClient_RetryWithBackoff(t *testing.T) {
	client, err := gemini.NewClient(context.Background(), "test-key", "gemini-test", 5*time.Second)
	require.NoError(t, err)
	defer client.Close()

	callCount := 0
	err = client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client, err := gemini.NewClient(context.Background(), "test-key", "gemini-test", 5*time.Second)
	require.NoError(t, err)
	defer client.Close()

	err = client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}

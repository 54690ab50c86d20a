package imagen_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailytoon-backend/internal/imagen"
)

func TestClient_Render_Success(t *testing.T) {
	imageBytes := []byte("fake-png-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/models/imagen-test:predict", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		params := req["parameters"].(map[string]interface{})
		assert.Equal(t, "1:1", params["aspectRatio"])
		assert.Equal(t, "block_some", params["safetyFilterLevel"])
		assert.Equal(t, "allow_adult", params["personGeneration"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]interface{}{
				{
					"bytesBase64Encoded": base64.StdEncoding.EncodeToString(imageBytes),
					"mimeType":           "image/png",
				},
			},
		})
	}))
	defer server.Close()

	client := imagen.NewClient(server.URL, "test-key", "imagen-test", 5*time.Second)

	data, err := client.Render(context.Background(), "a cat in a sunny field")
	require.NoError(t, err)
	assert.Equal(t, imageBytes, data)
}

func TestClient_Render_SafetyFiltered_EmptyPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := imagen.NewClient(server.URL, "test-key", "imagen-test", 5*time.Second)

	_, err := client.Render(context.Background(), "something the policy rejects")
	assert.ErrorIs(t, err, imagen.ErrSafetyFiltered)
}

func TestClient_Render_SafetyFiltered_RAIReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"predictions": []map[string]interface{}{
				{"raiFilteredReason": "blocked by responsible AI practices"},
			},
		})
	}))
	defer server.Close()

	client := imagen.NewClient(server.URL, "test-key", "imagen-test", 5*time.Second)

	_, err := client.Render(context.Background(), "something the policy rejects")
	assert.ErrorIs(t, err, imagen.ErrSafetyFiltered)
}

func TestClient_Render_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := imagen.NewClient(server.URL, "test-key", "imagen-test", 5*time.Second)

	_, err := client.Render(context.Background(), "a cat")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, imagen.ErrSafetyFiltered)
}

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/models"
)

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	body := decode[dtos.HealthCheckResponse](t, resp)
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "Pointr Maps API is running", body.Message)
	assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dtos.RouteErrorResponse](t, resp)
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Route /api/unknown not found", body.Message)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPut, "/api/sites", `{}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dtos.RouteErrorResponse](t, resp)
	assert.Equal(t, "Route /api/sites not found", body.Message)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/sites", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://maps.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/sites", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://maps.example.com")
	resp2, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "*", resp2.Header.Get("Access-Control-Allow-Origin"))
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	srv := newTestServer(t)

	const n = 40
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"name":"Site %d","location":"Somewhere"}`, i)
			req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/sites", strings.NewReader(body))
			if !assert.NoError(t, err) {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			resp, err := srv.Client().Do(req)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			if !assert.Equal(t, http.StatusCreated, resp.StatusCode) {
				return
			}
			var created dtos.ItemResponse[*models.Site]
			if assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created)) {
				ids <- created.Data.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	resp := doRequest(t, srv, http.MethodGet, "/api/sites", "")
	list := decode[dtos.ListResponse[*models.Site]](t, resp)
	assert.Equal(t, n, list.Count)
}

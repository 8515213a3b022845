package client_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/client"
	"globetrotter/pkg/utils"
)

func TestRecomputeBudget_SumsAllActivities(t *testing.T) {
	stops := []response_models.StopResponse{{ID: "s1"}, {ID: "s2"}}
	activities := map[string][]response_models.ActivityResponse{
		"s1": {{Cost: 10}, {Cost: 2.5}},
		"s2": {{Cost: 30}},
	}

	assert.Equal(t, 42.5, client.RecomputeBudget(stops, activities))
}

func TestRecomputeBudget_EmptyTrip(t *testing.T) {
	assert.Zero(t, client.RecomputeBudget(nil, nil))
}

func TestRecomputeBudget_NonFiniteCostsCountZero(t *testing.T) {
	stops := []response_models.StopResponse{{ID: "s1"}}
	activities := map[string][]response_models.ActivityResponse{
		"s1": {{Cost: math.NaN()}, {Cost: 7}},
	}

	assert.Equal(t, 7.0, client.RecomputeBudget(stops, activities))
}

func TestFetchTripBudget_SkipsFailingStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/stops/trip/"):
			writeJSON(w, http.StatusOK, utils.APIResponse{
				Success: true,
				Data:    []response_models.StopResponse{{ID: "s1"}, {ID: "broken"}},
			})
		case r.URL.Path == "/api/activities/stop/s1":
			writeJSON(w, http.StatusOK, utils.APIResponse{
				Success: true,
				Data:    []response_models.ActivityResponse{{Cost: 20}, {Cost: 5}},
			})
		default:
			writeJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Error: "Internal server error"})
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL, &client.MemoryStore{})

	total, err := c.FetchTripBudget(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, 25.0, total)
}

func TestFetchTripBudget_MatchesServerAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/stops/trip/"):
			writeJSON(w, http.StatusOK, utils.APIResponse{
				Success: true,
				Data:    []response_models.StopResponse{{ID: "s1"}},
			})
		case strings.HasPrefix(r.URL.Path, "/api/activities/stop/"):
			writeJSON(w, http.StatusOK, utils.APIResponse{
				Success: true,
				Data:    []response_models.ActivityResponse{{Cost: 19.99}, {Cost: 0}},
			})
		case strings.HasPrefix(r.URL.Path, "/api/budget/"):
			writeJSON(w, http.StatusOK, response_models.BudgetResponse{Total: 19.99})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL, &client.MemoryStore{})

	local, err := c.FetchTripBudget(context.Background(), "t1")
	require.NoError(t, err)
	remote, err := c.TripBudget(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, remote, local, "local recomputation mirrors the server total")
}

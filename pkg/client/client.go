// Package client is a typed wrapper around the GlobeTrotter HTTP API,
// together with the session persistence and budget recomputation the
// original frontend data layer performed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"globetrotter/internal/models/response_models"
)

var (
	// ErrUnauthorized means the server rejected the bearer token. The client
	// clears its session when this happens; callers should send the user
	// back to login.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string, store Store) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: NewSession(store),
	}
}

// Init loads any persisted session and tries to refresh the user snapshot
// from the profile endpoint. A failed refresh (offline, server down) keeps
// the cached data and stays logged in; only an explicit 401 logs out.
func (c *Client) Init(ctx context.Context) {
	c.session.Init()
	if !c.session.LoggedIn() {
		return
	}

	fresh, err := c.Profile(ctx)
	if err != nil {
		// Profile already cleared the session on ErrUnauthorized; any other
		// failure falls back to the cached snapshot.
		return
	}
	_ = c.session.RefreshUser(*fresh)
}

func (c *Client) Session() *Session {
	return c.session
}

// --- auth -------------------------------------------------------------------

func (c *Client) Signup(ctx context.Context, name, email, password string) (*response_models.AuthResponse, error) {
	var auth response_models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/users/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, &auth)
	if err != nil {
		return nil, err
	}
	if err := c.session.Login(auth.User, auth.Token); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*response_models.AuthResponse, error) {
	var auth response_models.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/users/login", map[string]string{
		"email": email, "password": password,
	}, &auth)
	if err != nil {
		return nil, err
	}
	if err := c.session.Login(auth.User, auth.Token); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) Logout() {
	c.session.Clear()
}

func (c *Client) Profile(ctx context.Context) (*response_models.UserResponse, error) {
	var out struct {
		User response_models.UserResponse `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --- trips ------------------------------------------------------------------

func (c *Client) TripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	var trips []response_models.TripResponse
	if err := c.doEnvelope(ctx, http.MethodGet, "/api/trips/"+userID, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *Client) DeleteTrip(ctx context.Context, tripID string) error {
	return c.doEnvelope(ctx, http.MethodDelete, "/api/trips/"+tripID, nil, nil)
}

// --- stops ------------------------------------------------------------------

func (c *Client) CreateStop(ctx context.Context, tripID, city, startDate, endDate string) (*response_models.StopResponse, error) {
	var stop response_models.StopResponse
	err := c.doEnvelope(ctx, http.MethodPost, "/api/stops", map[string]string{
		"tripId": tripID, "city": city, "startDate": startDate, "endDate": endDate,
	}, &stop)
	if err != nil {
		return nil, err
	}
	return &stop, nil
}

func (c *Client) StopsByTrip(ctx context.Context, tripID string) ([]response_models.StopResponse, error) {
	var stops []response_models.StopResponse
	if err := c.doEnvelope(ctx, http.MethodGet, "/api/stops/trip/"+tripID, nil, &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

func (c *Client) DeleteStop(ctx context.Context, stopID string) error {
	return c.doEnvelope(ctx, http.MethodDelete, "/api/stops/"+stopID, nil, nil)
}

// --- activities -------------------------------------------------------------

func (c *Client) CreateActivity(ctx context.Context, stopID, name string, cost float64, day string) (*response_models.ActivityResponse, error) {
	var activity response_models.ActivityResponse
	err := c.doEnvelope(ctx, http.MethodPost, "/api/activities", map[string]interface{}{
		"stopId": stopID, "activityName": name, "cost": cost, "day": day,
	}, &activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *Client) ActivitiesByStop(ctx context.Context, stopID string) ([]response_models.ActivityResponse, error) {
	var activities []response_models.ActivityResponse
	if err := c.doEnvelope(ctx, http.MethodGet, "/api/activities/stop/"+stopID, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *Client) DeleteActivity(ctx context.Context, activityID string) error {
	return c.doEnvelope(ctx, http.MethodDelete, "/api/activities/"+activityID, nil, nil)
}

// --- budget -----------------------------------------------------------------

func (c *Client) TripBudget(ctx context.Context, tripID string) (float64, error) {
	var out response_models.BudgetResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/budget/"+tripID, nil, &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

// --- plumbing ---------------------------------------------------------------

// doJSON performs a request and decodes the raw response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	resp, raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// doEnvelope performs a request and unwraps the {success, data, error}
// envelope, decoding data into out when requested.
func (c *Client) doEnvelope(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	_, raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	if !envelope.Success {
		return fmt.Errorf("%s %s: %s", method, path, envelope.Error)
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Forced logout: drop the cached session before reporting.
		c.session.Clear()
		return nil, nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, serverError(raw))
	case resp.StatusCode >= 400:
		return nil, nil, fmt.Errorf("%s %s: %s", method, path, serverError(raw))
	}

	return resp, raw, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// serverError digs the server-provided message out of either the envelope or
// the bare auth-error shape.
func serverError(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "request failed"
}

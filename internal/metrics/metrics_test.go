/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/users/:emp_id", 200, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/users/:emp_id", 200, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/users/:emp_id", 404, 5*time.Millisecond)

	const want = `
		# HELP usersvc_http_requests_total Total HTTP requests by method, route and status
		# TYPE usersvc_http_requests_total counter
		usersvc_http_requests_total{method="GET",route="/users/:emp_id",status="200"} 2
		usersvc_http_requests_total{method="GET",route="/users/:emp_id",status="404"} 1
	`
	assert.NoError(t, testutil.CollectAndCompare(m.requests, strings.NewReader(want), "usersvc_http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration, "usersvc_http_request_duration_seconds"))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/users", 201, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `usersvc_http_requests_total{method="POST",route="/users",status="201"} 1`)
	assert.Contains(t, body, "usersvc_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest(http.MethodGet, "/users", 200, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(a.requests.WithLabelValues("GET", "/users", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.requests.WithLabelValues("GET", "/users", "200")))
}

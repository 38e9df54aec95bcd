package userclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

func TestExists(t *testing.T) {
	var gotPath, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReqID = r.Header.Get(middleware.RequestIDHeader)
		switch r.URL.Path {
		case "/users/1/exists":
			w.WriteHeader(http.StatusOK)
		case "/users/999/exists":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second, zap.NewNop())
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	ok, err := c.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/users/1/exists", gotPath)
	assert.Equal(t, "req-42", gotReqID)

	ok, err = c.Exists(ctx, 999)
	require.NoError(t, err, "404 is an answer, not a failure")
	assert.False(t, ok)

	ok, err = c.Exists(ctx, 5)
	assert.False(t, ok)
	assert.Equal(t, apperr.KindRemoteValidation, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "Error validating user: ")
	assert.Contains(t, err.Error(), "500")
}

func TestExists_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, 50*time.Millisecond, zap.NewNop())

	start := time.Now()
	ok, err := c.Exists(context.Background(), 1)
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRemoteValidation, apperr.KindOf(err))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestExists_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New("http://"+addr, time.Second, zap.NewNop())
	ok, err := c.Exists(context.Background(), 1)
	assert.False(t, ok)
	assert.Equal(t, apperr.KindRemoteValidation, apperr.KindOf(err))

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.NotNil(t, ae.Err)
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New("http://users", 0, zap.NewNop())
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opavlenko/finance-manager/models"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","access_token":"tok-123","user":{"id":5,"username":"olena","email":"olena@example.com","role":"user"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), models.LoginRequest{Email: "olena@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, "tok-123", c.Token())
}

func TestBearerHeaderSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-abc"))
	_, err := c.Accounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestAuthExpiredOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("stale"))
	_, err := c.Budgets(context.Background(), "")
	assert.ErrorIs(t, err, ErrAuthExpired)
}

func TestAPIErrorUnwrapsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Account not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	_, err := c.Account(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Account not found", apiErr.Message)
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Transactions(ctx, TransactionFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBudgetFieldsDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"budgets":[{"id":1,"user_id":5,"category_id":3,"category_name":"Продукти","category_color":"#3B82F6","amount":1000,"period":"month","start_date":"2026-08-01T00:00:00Z","end_date":"2026-08-31T00:00:00Z","spent":250.5,"remaining":749.5,"percent":25.05}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	budgets, err := c.Budgets(context.Background(), "month")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "250.5", budgets[0].Spent.String())
	assert.InDelta(t, 25.05, budgets[0].Percent, 0.001)
}

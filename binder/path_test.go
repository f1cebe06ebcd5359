package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userapi/binder"
)

type byID struct {
	ID       string  `path:"id"`
	Optional *string `path:"slug"`
	Name     string  `json:"name"`
	Skipped  string  `path:"-"`
}

func TestPath_WithChi(t *testing.T) {
	t.Parallel()

	var got byID
	var bindErr error
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		bindErr = binder.Path(chi.URLParam)(req, &got)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/65f0c0ffee0000000000abcd", nil))

	require.NoError(t, bindErr)
	assert.Equal(t, "65f0c0ffee0000000000abcd", got.ID)
	assert.Nil(t, got.Optional)
	assert.Empty(t, got.Name)
}

func TestPath_PointerField(t *testing.T) {
	t.Parallel()

	extract := func(_ *http.Request, name string) string {
		return map[string]string{"id": "1", "slug": "ada", "-": "never"}[name]
	}
	var got byID
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &got))
	assert.Equal(t, "1", got.ID)
	require.NotNil(t, got.Optional)
	assert.Equal(t, "ada", *got.Optional)
	assert.Empty(t, got.Skipped)
}

func TestPath_Errors(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	extract := func(*http.Request, string) string { return "7" }

	var s byID
	assert.ErrorIs(t, binder.Path(nil)(req, &s), binder.ErrInvalidPath)
	assert.ErrorIs(t, binder.Path(extract)(req, s), binder.ErrInvalidPath)

	var n int
	assert.ErrorIs(t, binder.Path(extract)(req, &n), binder.ErrInvalidPath)

	var bad struct {
		Count int `path:"count"`
	}
	assert.ErrorIs(t, binder.Path(extract)(req, &bad), binder.ErrInvalidPath)
}

package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestBaseClientDo(t *testing.T) {
	var gotPath, gotType, gotLang, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		gotType, gotLang = r.Header.Get("Content-Type"), r.Header.Get("Accept-Language")
		w.Header().Set("Content-Language", "mr")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	headers := http.Header{"Accept-Language": {"mr"}}
	c := NewBaseClient(srv.URL+"/", NewDefaultHTTPClient(0))
	resp, err := c.Do(context.Background(), http.MethodPost, "billing/me/bills", []byte(`{"units":10}`), headers)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "mr", resp.Header.Get("Content-Language"))
	assert.JSONEq(t, `{"id":1}`, string(resp.Body))
	assert.Equal(t, "/billing/me/bills", gotPath)
	assert.Equal(t, `{"units":10}`, gotBody)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "mr", gotLang)
	assert.Empty(t, headers.Get("Content-Type"))
}

func TestBaseClientTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	c := NewBaseClient("http://billing:8083", doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	}))

	resp, err := c.Do(context.Background(), http.MethodGet, "/billing/tariffs", nil, nil)
	assert.Nil(t, resp)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "GET http://billing:8083/billing/tariffs")
}

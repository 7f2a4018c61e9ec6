package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestForwardJSON_AppendsParamsAndHeaders(t *testing.T) {
	var gotAuth, gotKeyword, gotSize, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Auth-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotKeyword = r.URL.Query().Get("keyword")
		gotSize = r.URL.Query().Get("size")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	f := NewForwarder()
	status, body, err := f.ForwardJSON(context.Background(), Request{
		URL:     srv.URL,
		Headers: map[string]string{"X-Auth-Key": "secret"},
		Params:  map[string]string{"keyword": "golang", "size": "5"},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "golang", gotKeyword)
	assert.Equal(t, "5", gotSize)

	var parsed map[string]string
	json.Unmarshal(body, &parsed)
	assert.Equal(t, "ok", parsed["status"])
}

func TestForwardJSON_RelaysUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "bad key"})
	}))
	defer srv.Close()

	f := NewForwarder()
	status, body, err := f.ForwardJSON(context.Background(), Request{URL: srv.URL})

	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusUnauthorized, status)

	var parsed map[string]string
	json.Unmarshal(body, &parsed)
	assert.Equal(t, "bad key", parsed["msg"])
}

func TestForwardJSON_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	f := NewForwarder()
	_, _, err := f.ForwardJSON(context.Background(), Request{URL: srv.URL})
	assert.NotEqual(t, nil, err)
}

func TestForwardJSON_NetworkError(t *testing.T) {
	f := NewForwarder()
	_, _, err := f.ForwardJSON(context.Background(), Request{URL: "http://127.0.0.1:1"})
	assert.NotEqual(t, nil, err)
}

func TestForwardJSON_DefaultMethodGet(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	f := NewForwarder()
	_, _, err := f.ForwardJSON(context.Background(), Request{URL: srv.URL})
	assert.Equal(t, nil, err)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestDownload_ReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>article text</body></html>"))
	}))
	defer srv.Close()

	f := NewForwarder()
	status, body, err := f.Download(context.Background(), srv.URL, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<html><body>article text</body></html>", string(body))
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dylan1021/WeScholarly/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	accounts []model.Account
	existing *model.Account
	addErr   error
	err      error

	added   []string
	removed []int64
}

func (f *fakeStore) List() ([]model.Account, error) {
	return f.accounts, f.err
}

func (f *fakeStore) Add(name, fakeid string) (*model.Account, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, fakeid)
	return &model.Account{ID: 1, Name: name, FakeID: fakeid}, nil
}

func (f *fakeStore) Remove(id int64) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeStore) FindByFakeID(fakeid string) (*model.Account, error) {
	return f.existing, f.err
}

func newTestRouter(store AccountStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(store)
	r.GET("/api/accounts", h.GetAccounts)
	r.POST("/api/accounts", h.AddAccount)
	r.DELETE("/api/accounts/:id", h.RemoveAccount)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetAccounts_ReturnsAccounts(t *testing.T) {
	store := &fakeStore{
		accounts: []model.Account{
			{ID: 1, Name: "Ruan Yifeng", FakeID: "f1", AddedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []AccountResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Ruan Yifeng", res[0].Name)
	assert.Equal(t, "f1", res[0].FakeID)
}

func TestGetAccounts_Empty(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetAccounts_DBError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAddAccount_Success(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/accounts", strings.NewReader(`{"name":"Ruan Yifeng","fakeid":"f1"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"f1"}, store.added)
}

func TestAddAccount_MissingFields(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	for _, body := range []string{`{}`, `{"name":"only name"}`, `{"fakeid":"only id"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/accounts", strings.NewReader(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestAddAccount_Duplicate(t *testing.T) {
	store := &fakeStore{existing: &model.Account{ID: 1, Name: "Tracked", FakeID: "f1"}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/accounts", strings.NewReader(`{"name":"Tracked","fakeid":"f1"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, len(store.added))
}

func TestRemoveAccount_Success(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/accounts/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{42}, store.removed)
}

func TestRemoveAccount_InvalidID(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/accounts/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

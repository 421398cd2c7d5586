package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/foodhubdev/foodhub/app/services"
	"github.com/foodhubdev/foodhub/app/utils/renderer"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRecordRepo struct{}

func (stubRecordRepo) Get(context.Context, string) (*models.CartRecord, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubRecordRepo) Upsert(context.Context, string, []byte) error { return nil }
func (stubRecordRepo) Delete(context.Context, string) error         { return nil }

type stubSnapshots struct{}

func (stubSnapshots) Snapshot(context.Context) (*cart.Snapshot, error) {
	return cart.NewSnapshot(
		cart.Item{ID: 1, Name: "Margherita Pizza", Price: decimal.NewFromInt(299), Category: "Italian"},
	), nil
}

func newCountHandler() (*CartHandler, *sessions.CookieSessionStore) {
	store := sessions.NewCookieSessionStore([]byte("handler-test-key"))
	carts := services.NewCartService(stubRecordRepo{}, stubSnapshots{})
	catalog := services.NewCatalogService(nil, nil, nil)
	return NewCartHandler(carts, catalog, store, renderer.New()), store
}

func decodeCount(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Count
}

func TestGetCountEmptyCart(t *testing.T) {
	h, _ := newCountHandler()

	w := httptest.NewRecorder()
	h.GetCount(w, httptest.NewRequest("GET", "/api/cart/count", nil))

	require.Equal(t, 200, w.Code)
	assert.Equal(t, 0, decodeCount(t, w))
}

func TestGetCountSumsSessionCartQuantities(t *testing.T) {
	h, store := newCountHandler()

	seeded := cart.Cart{}.AddLine(cart.Item{ID: 1, Price: decimal.NewFromInt(299)}, 3, nil)
	data, err := cart.Encode(seeded)
	require.NoError(t, err)

	seedW := httptest.NewRecorder()
	seedR := httptest.NewRequest("GET", "/api/cart/count", nil)
	require.NoError(t, store.CartStore(seedW, seedR).Save(data))

	req := httptest.NewRequest("GET", "/api/cart/count", nil)
	for _, cookie := range seedW.Result().Cookies() {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.GetCount(w, req)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, 3, decodeCount(t, w))
}

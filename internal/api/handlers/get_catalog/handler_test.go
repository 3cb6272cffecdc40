package get_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanaya/ZNY-BookingService/internal/api/handlers"
	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Religions: []domain.Religion{
			{ID: "hindu", Name: "Hindu", Icon: "om"},
			{ID: "muslim", Name: "Muslim", Icon: "crescent"},
			{ID: "sikh", Name: "Sikh", Icon: "khanda"},
		},
		Kits: []domain.Kit{
			{
				ReligionID: "hindu",
				Items: []domain.KitItem{
					{ID: "shroud", Name: "Shroud", Price: 500, Required: true},
					{ID: "ghee", Name: "Ghee", Price: 300},
				},
			},
			{
				ReligionID: "muslim",
				Items: []domain.KitItem{
					{ID: "kafan", Name: "Kafan", Price: 600, Required: true},
				},
			},
		},
		Services: []domain.Service{
			{ID: "pandit", Name: "Pandit Service", Price: 2500, Religions: []string{"hindu"}},
			{ID: "hearse", Name: "Hearse Van", Price: 2000, Religions: []string{"hindu", "muslim", "sikh"}},
		},
	}
}

// testRouter регистрирует маршруты так же, как cmd/server
func testRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/religions", h.HandleReligions).Methods(http.MethodGet)
	router.HandleFunc("/api/religions/{religionId}/kit", h.HandleKit).Methods(http.MethodGet)
	router.HandleFunc("/api/services", h.HandleServices).Methods(http.MethodGet)
	return router
}

func get(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleReligions(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/religions")
	assert.Equal(t, http.StatusOK, rec.Code)

	var religions []ReligionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&religions))
	require.Len(t, religions, 3)
	assert.Equal(t, "hindu", religions[0].ID)
	assert.Equal(t, "om", religions[0].Icon)
}

func TestHandleKit(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/religions/hindu/kit")
	assert.Equal(t, http.StatusOK, rec.Code)

	var kit KitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&kit))
	assert.Equal(t, "hindu", kit.ReligionID)
	require.Len(t, kit.Items, 2)
	assert.True(t, kit.Items[0].Required)
	assert.Equal(t, 500, kit.Items[0].Price)
}

func TestHandleKit_ReligionNotFound(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/religions/unknown/kit")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope handlers.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Religion not found", envelope.Message)
}

func TestHandleKit_KitNotFound(t *testing.T) {
	// Религия есть в каталоге, набор для неё не описан
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/religions/sikh/kit")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope handlers.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, "Kit not found for this religion", envelope.Message)
}

func TestHandleServices_All(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/services")
	assert.Equal(t, http.StatusOK, rec.Code)

	var services []ServiceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&services))
	assert.Len(t, services, 2)
}

func TestHandleServices_FilteredByReligion(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/services?religionId=sikh")
	assert.Equal(t, http.StatusOK, rec.Code)

	var services []ServiceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&services))
	require.Len(t, services, 1)
	assert.Equal(t, "hearse", services[0].ID)
}

func TestHandleServices_UnknownReligionIsEmptyList(t *testing.T) {
	router := testRouter(NewHandler(testCatalog(), nopLogger{}))

	rec := get(t, router, "/api/services?religionId=unknown")
	assert.Equal(t, http.StatusOK, rec.Code)

	var services []ServiceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&services))
	assert.Empty(t, services)
}

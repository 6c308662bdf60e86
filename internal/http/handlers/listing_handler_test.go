package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/repository"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// memListingRepo реализует service.ListingRepository в памяти.
type memListingRepo struct {
	byID map[uuid.UUID]*models.Listing
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{byID: make(map[uuid.UUID]*models.Listing)}
}

func (m *memListingRepo) Insert(ctx context.Context, l *models.Listing) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	stored := *l
	m.byID[l.ID] = &stored
	return nil
}

func (m *memListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	if l, ok := m.byID[id]; ok {
		found := *l
		return &found, nil
	}
	return nil, repository.ErrListingNotFound
}

func (m *memListingRepo) List(ctx context.Context, city string, limit, offset int) ([]models.Listing, error) {
	result := []models.Listing{}
	for _, l := range m.byID {
		if city == "" || l.City == city {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *memListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrListingNotFound
	}
	delete(m.byID, id)
	return nil
}

func newListingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewListingHandler(service.NewListingService(newMemListingRepo()))

	r := gin.New()
	r.POST("/haraj", handler.Create)
	r.GET("/haraj", handler.List)
	r.GET("/haraj/:id", handler.Get)
	r.DELETE("/admin/haraj/:id", handler.Delete)
	return r
}

func TestListingHandler_CreateAndList(t *testing.T) {
	r := newListingTestRouter()

	w := postJSON(r, "/haraj", gin.H{
		"title": "Used camping tent",
		"price": 250.0,
		"city":  "Riyadh",
		"phone": "0501234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Used camping tent")

	list, _ := http.NewRequest("GET", "/haraj?city=Riyadh", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, list)
	assert.Equal(t, http.StatusOK, lw.Code)
	assert.Contains(t, lw.Body.String(), "Used camping tent")
}

func TestListingHandler_Create_Validation(t *testing.T) {
	r := newListingTestRouter()

	w := postJSON(r, "/haraj", gin.H{"title": "No phone", "city": "Riyadh"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestListingHandler_Delete_NotFound(t *testing.T) {
	r := newListingTestRouter()

	req, _ := http.NewRequest("DELETE", "/admin/haraj/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamsatk/lamsat-backend/internal/http/middleware"
	"github.com/lamsatk/lamsat-backend/internal/models"
	"github.com/lamsatk/lamsat-backend/internal/repository"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

// memRequestRepo — хранилище в памяти для хэндлерных тестов.
// Реализует service.RequestRepository и service.RefCodeSource.
type memRequestRepo struct {
	byID map[uuid.UUID]*models.Request
	seq  int64
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{byID: make(map[uuid.UUID]*models.Request)}
}

func (m *memRequestRepo) NextRefSeq(ctx context.Context) (int64, error) {
	m.seq++
	return m.seq, nil
}

func (m *memRequestRepo) Insert(ctx context.Context, req *models.Request) error {
	for _, existing := range m.byID {
		if existing.Phone == req.Phone && existing.IsActive() {
			return repository.ErrDuplicatePhone
		}
	}
	req.ID = uuid.New()
	req.Status = models.StatusPending
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	stored := *req
	m.byID[req.ID] = &stored
	return nil
}

func (m *memRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	if req, ok := m.byID[id]; ok {
		found := *req
		return &found, nil
	}
	return nil, repository.ErrRequestNotFound
}

func (m *memRequestRepo) FindActiveByPhone(ctx context.Context, phone string) (*models.Request, error) {
	for _, req := range m.byID {
		if req.Phone == phone && req.IsActive() {
			found := *req
			return &found, nil
		}
	}
	return nil, repository.ErrRequestNotFound
}

func (m *memRequestRepo) FindByRefAndPhone(ctx context.Context, refCode, phone string) (*models.Request, error) {
	for _, req := range m.byID {
		if req.RefCode == refCode && req.Phone == phone {
			found := *req
			return &found, nil
		}
	}
	return nil, repository.ErrRequestNotFound
}

func (m *memRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Request, error) {
	req, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	updated := *req
	return &updated, nil
}

func (m *memRequestRepo) List(ctx context.Context, status string, limit, offset int) ([]models.Request, error) {
	result := []models.Request{}
	for _, req := range m.byID {
		if status == "" || req.Status == status {
			result = append(result, *req)
		}
	}
	return result, nil
}

func newRequestTestRouter() (*gin.Engine, *service.RequestService) {
	gin.SetMode(gin.TestMode)
	repo := newMemRequestRepo()
	svc := service.NewRequestService(repo, service.NewRefCodeGenerator(repo), nil, time.Second)
	handler := NewRequestHandler(svc)

	r := gin.New()
	r.POST("/requests/provider", handler.SubmitProvider)
	r.POST("/requests/customer", handler.SubmitCustomer)

	// Админские маршруты с искусственно выставленным флагом допуска.
	admin := r.Group("/admin")
	admin.Use(func(c *gin.Context) {
		c.Set(middleware.ContextIsAdminKey, true)
		c.Next()
	})
	admin.GET("/requests", handler.ListRequests)
	admin.GET("/requests/:id", handler.GetRequest)
	admin.PUT("/requests/:id/status", handler.UpdateStatus)

	return r, svc
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestHandler_SubmitProvider(t *testing.T) {
	r, _ := newRequestTestRouter()

	w := postJSON(r, "/requests/provider", gin.H{
		"name":         "A",
		"phone":        "0501234567",
		"service_type": "camp",
		"city":         "Riyadh",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "LK-000001")
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestRequestHandler_Submit_MissingFields(t *testing.T) {
	r, _ := newRequestTestRouter()

	w := postJSON(r, "/requests/customer", gin.H{"name": "A"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestRequestHandler_Submit_Duplicate(t *testing.T) {
	r, _ := newRequestTestRouter()

	body := gin.H{
		"name":         "A",
		"phone":        "0501234567",
		"service_type": "camp",
		"city":         "Riyadh",
	}
	first := postJSON(r, "/requests/provider", body)
	require.Equal(t, http.StatusCreated, first.Code)

	body["phone"] = "050 123 4567"
	second := postJSON(r, "/requests/provider", body)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "CONFLICT")
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	r, svc := newRequestTestRouter()

	created, err := svc.Submit(context.Background(), service.SubmitInput{
		Kind:        models.KindProvider,
		Name:        "A",
		Phone:       "0501234567",
		ServiceType: "camp",
		City:        "Riyadh",
	})
	require.NoError(t, err)

	raw, _ := json.Marshal(gin.H{"status": "approved"})
	req, _ := http.NewRequest("PUT", "/admin/requests/"+created.ID.String()+"/status", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	// Повторный переход по той же заявке — ошибка lifecycle.
	again := httptest.NewRecorder()
	req2, _ := http.NewRequest("PUT", "/admin/requests/"+created.ID.String()+"/status", bytes.NewReader(raw))
	r.ServeHTTP(again, req2)
	assert.Equal(t, http.StatusBadRequest, again.Code)
	assert.Contains(t, again.Body.String(), "INVALID_TRANSITION")
}

func TestRequestHandler_UpdateStatus_InvalidTarget(t *testing.T) {
	r, svc := newRequestTestRouter()

	created, err := svc.Submit(context.Background(), service.SubmitInput{
		Kind:        models.KindProvider,
		Name:        "A",
		Phone:       "0501234567",
		ServiceType: "camp",
		City:        "Riyadh",
	})
	require.NoError(t, err)

	raw, _ := json.Marshal(gin.H{"status": "pending"})
	req, _ := http.NewRequest("PUT", "/admin/requests/"+created.ID.String()+"/status", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TARGET")
}

func TestRequestHandler_UpdateStatus_InvalidUUID(t *testing.T) {
	r, _ := newRequestTestRouter()

	raw, _ := json.Marshal(gin.H{"status": "approved"})
	req, _ := http.NewRequest("PUT", "/admin/requests/not-a-uuid/status", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestHandler_GetRequest_NotFound(t *testing.T) {
	r, _ := newRequestTestRouter()

	req, _ := http.NewRequest("GET", "/admin/requests/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

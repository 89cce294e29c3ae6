package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tsmit_os/internal/adapter/http/handlers/mocks"
	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatusHandler_ListStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatusUseCase(ctrl)
	h := NewStatusHandler(uc)

	r := gin.New()
	r.GET("/v1/statuses", h.ListStatuses)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Status{
		{ID: "a", Name: "Aberta", Order: 1},
		{ID: "b", Name: "Entregue", Order: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/statuses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 2 || got[0]["name"] != "Aberta" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestStatusHandler_CreateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		r := gin.New()
		r.POST("/v1/statuses", h.CreateStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/statuses", bytes.NewBufferString(`{"order":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		r := gin.New()
		r.POST("/v1/statuses", h.CreateStatus)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, s entities.Status) (entities.Status, error) {
				if s.Name != "Em Análise" || !s.TriggersEmail {
					t.Fatalf("unexpected entity: %+v", s)
				}
				s.ID = "new-id"
				return s, nil
			},
		)

		body := `{"name":"Em Análise","order":2,"triggers_email":true,"email_body":"Olá {{clientName}}"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/statuses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestStatusHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatusUseCase(ctrl)
	h := NewStatusHandler(uc)

	r := gin.New()
	r.GET("/v1/statuses/:id", h.GetStatus)

	uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Status{}, usecase.ErrStatusNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/statuses/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestStatusHandler_DeleteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatusUseCase(ctrl)
	h := NewStatusHandler(uc)

	r := gin.New()
	r.DELETE("/v1/statuses/:id", h.DeleteStatus)

	uc.EXPECT().Delete(gomock.Any(), "a").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/statuses/a", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

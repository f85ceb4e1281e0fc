package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gera_wallet/internal/adapter/http/handlers/mocks"
	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase"
	"gera_wallet/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIPassUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPassUseCase(ctrl)
	h := NewCardHandler(uc, nil)

	r := gin.New()
	r.POST("/card/", h.CreateCard)
	r.GET("/card/:id", h.GetCard)
	r.NoRoute(NotFound)
	return r, uc
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCardHandler_CreateCard(t *testing.T) {
	stored := entities.StoredPass{SerialNumber: "serial-1", Artifact: []byte("PK-archive")}

	t.Run("success", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw entities.RawRecord) (entities.StoredPass, error) {
				assert.Equal(t, "boleto", raw.Text("type"))
				assert.Equal(t, []string{"type", "message"}, keys(raw))
				return stored, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(`{"type":"boleto","message":"Pague"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, entities.PassMIMEType, w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="serial-1.pkpass"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK-archive", w.Body.String())
	})

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantCode   string
		wantFields []string
	}{
		{
			name:       "missing fields",
			body:       `{"type":"boleto"}`,
			ucErr:      &usecase.MissingFieldsError{Fields: []string{"message", "cpf/cnpj"}},
			wantCode:   "MissingValueOnRequest",
			wantFields: []string{"message", "cpf/cnpj"},
		},
		{name: "invalid type", body: `{"type":"pix"}`, ucErr: usecase.ErrInvalidCardType, wantCode: "InvalidCardType"},
		{
			name:     "image aborted",
			body:     `{"type":"nubank"}`,
			ucErr:    fmt.Errorf("%w: dial tcp: timeout", usecase.ErrImageRequestAborted),
			wantCode: "ImageRequestAborted",
		},
		{name: "unclassified", body: `{"type":"nubank"}`, ucErr: errors.New("image: unknown format"), wantCode: "image: unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newTestRouter(t)
			uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.StoredPass{}, tt.ucErr)

			req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, "Erro ao criar novo cartão.", body.Message)
			assert.Equal(t, tt.wantCode, body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
		})
	}

	t.Run("body is not an object", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(`["boleto"]`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "MissingValueOnRequest", body.Error)
		assert.Equal(t, []string{"type", "message", "recipientName", "recipientPhoneNumber"}, body.Fields)
	})

	t.Run("empty body", func(t *testing.T) {
		for _, payload := range []string{"", "  \n"} {
			r, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(payload))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, "MissingValueOnRequest", body.Error)
			assert.Equal(t, []string{"type", "message", "recipientName", "recipientPhoneNumber"}, body.Fields)
		}
	})

	t.Run("body over the limit", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(`{"type":"boleto"}`))
		w := httptest.NewRecorder()
		req.Body = http.MaxBytesReader(w, req.Body, 4)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "PayloadTooLarge", body.Error)
		assert.Equal(t, "Erro ao criar novo cartão.", body.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/card/", bytes.NewBufferString(`{"type":`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Erro ao criar novo cartão.", body.Message)
		assert.NotEmpty(t, body.Error)
	})
}

func TestCardHandler_GetCard(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().GetBySerialNumber(gomock.Any(), "serial-1").
			Return(entities.StoredPass{SerialNumber: "serial-1", Artifact: []byte("PK")}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/card/serial-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, entities.PassMIMEType, w.Header().Get("Content-Type"))
		assert.Equal(t, "PK", w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().GetBySerialNumber(gomock.Any(), "nope").Return(entities.StoredPass{}, usecase.ErrPassNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/card/nope", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Erro ao retornar cartão existente.", body.Message)
		assert.Equal(t, "PassNotFound", body.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().GetBySerialNumber(gomock.Any(), "x").Return(entities.StoredPass{}, errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/card/x", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "connection refused", decodeError(t, w).Error)
	})
}

func TestNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nothing/here", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "NotFound", body.Error)
	assert.Equal(t, "Endpoint não encontrado.", body.Message)
}

func TestMapCardError(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", &usecase.MissingFieldsError{Fields: []string{"nubankUrl"}})
	appErr := mapCardError("m", wrapped)
	assert.Equal(t, "MissingValueOnRequest", appErr.Code)
	assert.Equal(t, []string{"nubankUrl"}, appErr.Fields)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.ErrorIs(t, appErr, usecase.ErrMissingValueOnRequest)

	appErr = mapCardError("m", usecase.ErrMissingValueOnRequest)
	assert.Equal(t, "MissingValueOnRequest", appErr.Code)
	assert.Nil(t, appErr.Fields)
}

func keys(raw entities.RawRecord) []string {
	out := make([]string, 0, raw.Len())
	for _, f := range raw.Fields() {
		out = append(out, f.Key)
	}
	return out
}

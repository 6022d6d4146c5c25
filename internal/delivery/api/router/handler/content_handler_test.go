package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"showcase/internal/domain/entity"
	domainerrors "showcase/internal/domain/errors"
	mockUC "showcase/internal/mocks/usecase"
	"showcase/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentHandler_Get(t *testing.T) {
	uc := mockUC.NewMockContentUsecase(t)
	h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

	uc.EXPECT().Resolve(mock.Anything, "about", "ar").Return(&entity.Content{
		Type: entity.ContentType("about"),
		Data: map[string]any{"title": "من نحن"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/?lang=ar", nil, "")
	c.SetParamNames("type")
	c.SetParamValues("about")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"title":"من نحن"}`, string(decodeEnvelope(t, rec).Data))
}

func TestContentHandler_Get_InvalidType(t *testing.T) {
	uc := mockUC.NewMockContentUsecase(t)
	h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

	uc.EXPECT().Resolve(mock.Anything, "bogus", "").Return(nil, domainerrors.ErrInvalidContentType)

	c, rec := newTestContext(http.MethodGet, "/", nil, "")
	c.SetParamNames("type")
	c.SetParamValues("bogus")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CONTENT_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestContentHandler_Update(t *testing.T) {
	t.Run("stores body verbatim", func(t *testing.T) {
		uc := mockUC.NewMockContentUsecase(t)
		h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

		data := map[string]any{"heading": "Hello", "items": []any{"a", "b"}}
		uc.EXPECT().Update(mock.Anything, "home", "EN", data).Return(&entity.Content{Data: data}, nil)

		c, rec := newTestContext(http.MethodPut, "/?lang=EN", strings.NewReader(`{"heading":"Hello","items":["a","b"]}`), "application/json")
		c.SetParamNames("type")
		c.SetParamValues("home")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"heading":"Hello","items":["a","b"]}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("empty object is not filled from route", func(t *testing.T) {
		uc := mockUC.NewMockContentUsecase(t)
		h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

		uc.EXPECT().Update(mock.Anything, "home", "EN", map[string]any{}).Return(nil, domainerrors.ErrEmptyPayload)

		c, rec := newTestContext(http.MethodPut, "/?lang=EN", strings.NewReader(`{}`), "application/json")
		c.SetParamNames("type")
		c.SetParamValues("home")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_PAYLOAD", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("rejects non-object body", func(t *testing.T) {
		uc := mockUC.NewMockContentUsecase(t)
		h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

		c, rec := newTestContext(http.MethodPut, "/", strings.NewReader(`[1,2,3]`), "application/json")
		c.SetParamNames("type")
		c.SetParamValues("home")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestContentHandler_Initialize(t *testing.T) {
	uc := mockUC.NewMockContentUsecase(t)
	h := NewContentHandler(ContentHandlerParams{ContentUC: uc, Logger: slog.Default()})

	uc.EXPECT().Initialize(mock.Anything).Return([]usecase.ContentInitResult{
		{Type: entity.ContentType("footer"), Language: entity.LanguageEN, Status: usecase.InitStatusCreated},
	})

	c, rec := newTestContext(http.MethodPost, "/", nil, "")

	require.NoError(t, h.Initialize(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[{"type":"footer","language":"EN","status":"created"}]}`, string(decodeEnvelope(t, rec).Data))
}

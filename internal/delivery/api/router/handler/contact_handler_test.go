package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"showcase/internal/domain/entity"
	mockUC "showcase/internal/mocks/usecase"
	"showcase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Submit(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		uc := mockUC.NewMockContactUsecase(t)
		h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: slog.Default()})

		input := &usecase.ContactInput{Name: "Sara", Email: "sara@example.com", Phone: "+966500000000", Message: "Quote please"}
		uc.EXPECT().Submit(mock.Anything, input).Return(&entity.Contact{
			ID:      uuid.New(),
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Message: input.Message,
		}, nil)

		body := `{"name":"Sara","email":"sara@example.com","phone":"+966500000000","message":"Quote please"}`
		c, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), "application/json")

		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"isRead":false`)
	})

	t.Run("reports invalid fields", func(t *testing.T) {
		uc := mockUC.NewMockContactUsecase(t)
		h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: slog.Default()})

		body := `{"name":"Sara","email":"not-an-email","message":"hi"}`
		c, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), "application/json")

		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, map[string]any{"email": "email", "phone": "required"}, env.Error.Details)
	})
}

func TestContactHandler_MarkRead(t *testing.T) {
	uc := mockUC.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: slog.Default()})

	id := uuid.New()
	uc.EXPECT().MarkRead(mock.Anything, id).Return(&entity.Contact{ID: id, IsRead: true}, nil)

	c, rec := newTestContext(http.MethodPut, "/", nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"isRead":true`)
}

func TestContactHandler_Delete(t *testing.T) {
	uc := mockUC.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: uc, Logger: slog.Default()})

	id := uuid.New()
	uc.EXPECT().Delete(mock.Anything, id).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/", nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Contact message removed"}`, string(decodeEnvelope(t, rec).Data))
}

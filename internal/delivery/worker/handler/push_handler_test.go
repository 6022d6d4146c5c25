package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showcase/internal/domain/service"
	"showcase/internal/errors"
	mockSvc "showcase/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/contact-notifier"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.ContactReceivedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ContactReceivedEvent{ContactID: "c-42", Name: "Sara", Email: "sara@example.com"}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(m *mockSvc.MockMailer)
		wantStatus int
	}{
		{
			name: "sends notification",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-1"})
			},
			setup: func(m *mockSvc.MockMailer) {
				m.EXPECT().
					SendContactNotification(mock.Anything, mock.MatchedBy(func(e *service.ContactReceivedEvent) bool {
						return e.ContactID == "c-42" && e.Email == "sara@example.com"
					})).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "mail failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setup: func(m *mockSvc.MockMailer) {
				m.EXPECT().SendContactNotification(mock.Anything, mock.Anything).Return(errors.New("smtp: 421"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "undecodable data",
			body:       func(t *testing.T) string { return pushBody(t, "%%%not-base64", nil) },
			setup:      func(m *mockSvc.MockMailer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "payload is not an event",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil)
			},
			setup:      func(m *mockSvc.MockMailer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "event without contact id is dropped",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, &service.ContactReceivedEvent{Name: "x"}), nil)
			},
			setup:      func(m *mockSvc.MockMailer) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := mockSvc.NewMockMailer(t)
			tt.setup(mailer)

			h := &PushHandler{mailer: mailer, logger: slog.Default()}

			rec := servePush(h, tt.body(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	h := &PushHandler{
		verifyPushAuth: true,
		verifyToken:    func(*http.Request) error { return errors.New("missing bearer token") },
		mailer:         mailer,
		logger:         slog.Default(),
	}

	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	event := &service.ContactReceivedEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", extractRequestID(t.Context(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	assert.Equal(t, "from-attrs", extractRequestID(t.Context(), &msg, event))

	assert.NotEmpty(t, extractRequestID(t.Context(), &PubSubMessage{}, &service.ContactReceivedEvent{}))
}

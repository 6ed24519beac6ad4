package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironnest/ironnest-backend/middleware"
	"github.com/ironnest/ironnest-backend/types"
)

func newEmailRouter(notifier EmailNotifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/send_email", NewEmailHandler(notifier).SendEmail)
	return r
}

func TestSendEmail(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("Send", mock.Anything, mock.AnythingOfType("*types.EmailMessage")).
		Return("msg-abc", nil)

	r := newEmailRouter(notifier)
	w := doJSON(r, http.MethodPost, "/api/send_email", types.EmailMessage{
		To:          "client@example.com",
		Subject:     "Hello",
		HTMLContent: "<p>Hello</p>",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.EmailSendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "msg-abc", resp.MessageID)
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("Send", mock.Anything, mock.Anything).Return("", assert.AnError)

	r := newEmailRouter(notifier)
	w := doJSON(r, http.MethodPost, "/api/send_email", types.EmailMessage{
		To:          "client@example.com",
		Subject:     "Hello",
		HTMLContent: "<p>Hello</p>",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendEmail_InvalidPayload(t *testing.T) {
	r := newEmailRouter(relaxedNotifier{})

	w := doJSON(r, http.MethodPost, "/api/send_email", map[string]string{
		"to": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

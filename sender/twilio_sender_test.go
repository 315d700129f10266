package sender

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTwilioSenderRequiresConfig(t *testing.T) {
	_, err := NewTwilioSender("", "token", "+15550001111")
	assert.Error(t, err)

	_, err = NewTwilioSender("AC123", "", "+15550001111")
	assert.Error(t, err)

	_, err = NewTwilioSender("AC123", "token", "")
	assert.Error(t, err)
}

func TestTwilioSendSMSReturnsMessageSID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+919876543210", r.PostForm.Get("To"))
		assert.Equal(t, "+15550001111", r.PostForm.Get("From"))
		assert.Equal(t, "Your login code is 123456.", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM9f1c", "status": "queued"}`))
	}))
	defer server.Close()

	sender, err := NewTwilioSender("AC123", "token", "+15550001111")
	assert.NoError(t, err)
	sender.baseURL = server.URL

	result, err := sender.SendSMS(context.Background(), "+919876543210", "Your login code is 123456.")

	assert.NoError(t, err)
	assert.Equal(t, "SM9f1c", result.MessageID)
	assert.False(t, result.SentAt.IsZero())
}

func TestTwilioSendSMSSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": 21211, "message": "Invalid 'To' phone number"}`))
	}))
	defer server.Close()

	sender, err := NewTwilioSender("AC123", "token", "+15550001111")
	assert.NoError(t, err)
	sender.baseURL = server.URL

	_, err = sender.SendSMS(context.Background(), "bogus", "hi")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid 'To' phone number")
}

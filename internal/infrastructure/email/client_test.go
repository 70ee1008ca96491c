package email

import (
	"errors"
	"testing"

	"github.com/resendlabs/resend-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_RequiresAPIKey(t *testing.T) {
	_, err := NewService(Config{})
	assert.Error(t, err)

	svc, err := NewService(Config{APIKey: "re_test"})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestSendNewsletterWelcome(t *testing.T) {
	var sent *resend.SendEmailRequest
	client := NewResendClient(func(params *resend.SendEmailRequest) error {
		sent = params
		return nil
	}, Config{FromEmail: "hola@festina.com.co", StoreURL: "https://festina.com.co"})

	require.NoError(t, client.SendNewsletterWelcome("ana@example.com"))

	require.NotNil(t, sent)
	assert.Equal(t, "Festina <hola@festina.com.co>", sent.From)
	assert.Equal(t, []string{"ana@example.com"}, sent.To)
	assert.Contains(t, sent.Html, "¡Gracias por suscribirte!")
	assert.Contains(t, sent.Html, `href="https://festina.com.co"`)
}

func TestSendNewsletterWelcome_WrapsSendError(t *testing.T) {
	boom := errors.New("rate limited")
	client := NewResendClient(func(*resend.SendEmailRequest) error { return boom }, Config{})

	err := client.SendNewsletterWelcome("ana@example.com")

	assert.ErrorIs(t, err, boom)
}

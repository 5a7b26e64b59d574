package repository

import (
	"context"
	"testing"

	"finora/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_emailRepositoryHandler_SendEmail(t *testing.T) {
	if true {
		t.Skip("sends a real email through SES; needs secrets-dev.json and a verified recipient")
	}

	secrets, err := util.LoadSecretsFromFile("../../secrets-dev.json")
	require.NoError(t, err)
	require.NotEmpty(t, secrets.SES.Region)
	require.NotEmpty(t, secrets.SES.FromEmail)

	handler, err := NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	require.NoError(t, err)

	body := `<html><body><h1>Test Email</h1><p>SES wiring works.</p></body></html>`
	err = handler.SendEmail(context.Background(), secrets.SES.FromEmail, "Finora test email", body)
	require.NoError(t, err)
}

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSecretsFromFile(t *testing.T) {
	t.Run("reads nested keys and defaults", func(t *testing.T) {
		path := writeSecrets(t, `{
			"db": {"host": "localhost", "user": "postgres", "port": "5440", "password": "pw", "database": "finora"},
			"jwt": "secret",
			"ses": {"region": "us-east-1", "fromEmail": "reports@finora.dev"}
		}`)

		secrets, err := LoadSecretsFromFile(path)
		require.NoError(t, err)

		require.Equal(t, "localhost", secrets.Db.Host)
		require.Equal(t, "secret", secrets.Jwt)
		require.Equal(t, "reports@finora.dev", secrets.SES.FromEmail)
		require.Equal(t, 3009, secrets.Port)
		require.Equal(t, 300, secrets.Redis.TTLSeconds)
		require.Equal(t,
			"host=localhost port=5440 user=postgres password=pw dbname=finora sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
		require.Equal(t,
			"postgres://postgres:pw@localhost:5440/finora?sslmode=disable",
			secrets.Db.ToURL(),
		)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeSecrets(t, `{"db": {"host": "localhost"}}`)
		t.Setenv("FINORA_DB_HOST", "db.internal")

		secrets, err := LoadSecretsFromFile(path)
		require.NoError(t, err)
		require.Equal(t, "db.internal", secrets.Db.Host)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSecretsFromFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

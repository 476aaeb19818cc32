package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cobranza.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
auth:
  jwt_secret: s3cret
pjud:
  base_url: http://localhost:9000
docintel:
  base_url: http://localhost:9100
users:
  - rut: 11.111.111-1
    password: "123"
    name: Ana Rojas
    group: abogados
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24, cfg.Auth.TokenExpireHours)
	assert.Equal(t, 30*time.Second, cfg.PJUD.Timeout())
	assert.Equal(t, 2*time.Minute, cfg.DocIntel.Timeout())
	assert.Equal(t, "cobranza-documentos", cfg.Minio.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
server:
  port: 9999
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("COBRANZA_TEST_SECRET", "from-env")
	cfg, err := Load(writeConfig(t, `
auth:
  jwt_secret: "{{.COBRANZA_TEST_SECRET}}"
pjud:
  base_url: http://localhost:9000
docintel:
  base_url: http://localhost:9100
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoad_CollectsAllValidationProblems(t *testing.T) {
	_, err := Load(writeConfig(t, `
users:
  - rut: 1-9
    password: a
  - rut: 1-9
    password: b
`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFindUser(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	u := cfg.FindUser("11.111.111-1")
	require.NotNil(t, u)
	assert.Equal(t, "Ana Rojas", u.Name)
	assert.Nil(t, cfg.FindUser("22.222.222-2"))
}

func TestExpandEnv_LeavesDollarSignsAlone(t *testing.T) {
	in := []byte(`password: "p@ss$word-${NOT_EXPANDED}"`)
	assert.Equal(t, in, ExpandEnv(in))
}

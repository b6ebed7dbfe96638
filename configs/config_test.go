package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: checkout-api
  http_addr: ":3000"
  log_level: info
  log_file: ./logs/app.log
http:
  read_timeout: 10s
  write_timeout: 30s
  idle_timeout: 60s
web:
  templates_glob: ./web/templates/*.html
  static_dir: ./web/static
stripe:
  secret_key: ""
  publishable_key: pk_from_yaml
`

func writeConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(baseYAML), 0644))
	return dir
}

func TestLoadBase(t *testing.T) {
	cfg, err := Load(writeConfigDir(t), "dev")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.App.HTTPAddr)
	assert.Equal(t, "./web/static", cfg.Web.StaticDir)
	assert.Equal(t, "pk_from_yaml", cfg.Stripe.PublishableKey)
	assert.Empty(t, cfg.Stripe.SecretKey, "missing secret key must not fail the load")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHECKOUT_STRIPE__SECRET_KEY", "sk_from_env")
	t.Setenv("CHECKOUT_APP__HTTP_ADDR", ":8080")

	cfg, err := Load(writeConfigDir(t), "dev")
	require.NoError(t, err)

	assert.Equal(t, "sk_from_env", cfg.Stripe.SecretKey)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
}

func TestLoadEnvOverlayFile(t *testing.T) {
	dir := writeConfigDir(t)
	overlay := "app:\n  http_addr: \":9000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yaml"), []byte(overlay), 0644))

	cfg, err := Load(dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.App.HTTPAddr)
}

func TestValidate(t *testing.T) {
	var cfg Config
	assert.Error(t, cfg.Validate())

	cfg.App.HTTPAddr = ":3000"
	assert.Error(t, cfg.Validate(), "templates glob still missing")

	cfg.Web.TemplatesGlob = "./web/templates/*.html"
	cfg.Web.StaticDir = "./web/static"
	assert.NoError(t, cfg.Validate())
}

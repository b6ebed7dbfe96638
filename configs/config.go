package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Web struct {
		TemplatesGlob string `koanf:"templates_glob"`
		StaticDir     string `koanf:"static_dir"`
	} `koanf:"web"`

	Stripe struct {
		SecretKey      string `koanf:"secret_key"`
		PublishableKey string `koanf:"publishable_key"`
	} `koanf:"stripe"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix CHECKOUT_, nested with __)
	// e.g. CHECKOUT_STRIPE__SECRET_KEY, CHECKOUT_APP__HTTP_ADDR
	if err := k.Load(env.Provider("CHECKOUT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CHECKOUT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks only what the process cannot start without. Stripe keys
// are deliberately not required here: a missing key surfaces as a gateway
// failure on the first payment call, not as a startup error.
func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Web.TemplatesGlob == "" {
		return fmt.Errorf("web.templates_glob required")
	}
	if c.Web.StaticDir == "" {
		return fmt.Errorf("web.static_dir required")
	}
	return nil
}

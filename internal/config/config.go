package config

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	RFMSourceRemote = "remote"
	RFMSourceLocal  = "local"
)

// ErrSelfReferentialAnalytics indica ANALYTICS_URL apontando para o próprio console com RFM_SOURCE=remote.
var ErrSelfReferentialAnalytics = errors.New("ANALYTICS_URL aponta para o próprio console")

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Backend      Backend      `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Sessions     Sessions     `mapstructure:",squash"`
	Janitor      Janitor      `mapstructure:",squash"`
	BackendProbe BackendProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Backend aponta para a API REST do back-office (publishers e POs).
type Backend struct {
	URL     string        `mapstructure:"backend_api_url"`
	Timeout time.Duration `mapstructure:"backend_timeout"`
}

// Analytics aponta para o serviço que expõe /api/rfm-data e /plot/*.png.
type Analytics struct {
	URL          string `mapstructure:"analytics_url"`
	ChartBaseURL string `mapstructure:"chart_base_url"`
	RFMSource    string `mapstructure:"rfm_source"`
}

type Sessions struct {
	ManageTTL        time.Duration `mapstructure:"manage_session_ttl"`
	DashboardViewTTL time.Duration `mapstructure:"dashboard_view_ttl"`
}

type Janitor struct {
	CronSchedule string `mapstructure:"janitor_cron"`
	Enabled      bool   `mapstructure:"janitor_enabled"`
}

type BackendProbe struct {
	CronSchedule string `mapstructure:"backend_probe_cron"`
	Enabled      bool   `mapstructure:"backend_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("ALLOWED_ORIGINS", "")

	viper.SetDefault("BACKEND_API_URL", "http://127.0.0.1:5000/api")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")

	viper.SetDefault("ANALYTICS_URL", "http://127.0.0.1:8000")
	viper.SetDefault("CHART_BASE_URL", "") // vazio: usa ANALYTICS_URL
	viper.SetDefault("RFM_SOURCE", RFMSourceRemote)

	viper.SetDefault("MANAGE_SESSION_TTL", "2h")
	viper.SetDefault("DASHBOARD_VIEW_TTL", "2h")

	viper.SetDefault("JANITOR_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("JANITOR_ENABLED", true)

	viper.SetDefault("BACKEND_PROBE_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("BACKEND_PROBE_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	return load()
}

func load() (*Config, error) {
	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	c.Analytics.URL = strings.TrimRight(c.Analytics.URL, "/")
	c.Analytics.ChartBaseURL = strings.TrimRight(c.Analytics.ChartBaseURL, "/")

	if c.Analytics.ChartBaseURL == "" {
		c.Analytics.ChartBaseURL = c.Analytics.URL
	}

	c.Analytics.RFMSource = strings.ToLower(strings.TrimSpace(c.Analytics.RFMSource))
	if c.Analytics.RFMSource != RFMSourceLocal {
		c.Analytics.RFMSource = RFMSourceRemote
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	if c.Analytics.RFMSource == RFMSourceRemote && c.Server.addresses(c.Analytics.URL) {
		return errors.Wrapf(ErrSelfReferentialAnalytics, "%s com PORT=%s", c.Analytics.URL, c.Server.Port)
	}
	if c.Server.addresses(c.Analytics.ChartBaseURL) {
		logrus.WithFields(logrus.Fields{
			"chart_base_url": c.Analytics.ChartBaseURL,
			"port":           c.Server.Port,
		}).Warn("CHART_BASE_URL aponta para o próprio console; os gráficos não vão carregar")
	}

	return nil
}

// addresses informa se a URL cai no host e porta em que o console escuta.
// Nomes de loopback e o endereço curinga são tratados como o mesmo host.
func (s Server) addresses(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	if port != strings.TrimSpace(s.Port) {
		return false
	}

	return hostKey(u.Hostname()) == hostKey(s.Host)
}

func hostKey(host string) string {
	host = strings.ToLower(strings.Trim(strings.TrimSpace(host), "[]"))
	switch host {
	case "", "localhost", "0.0.0.0", "::":
		return "loopback"
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return "loopback"
	}
	return host
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}

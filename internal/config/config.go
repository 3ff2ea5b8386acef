package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Source providers.
const (
	SourceSheets = "sheets"
	SourceXLSX   = "xlsx"
	SourceS3     = "s3"
)

// Render engines.
const (
	EngineChrome = "chrome"
	EngineMaroto = "maroto"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Source      SourceConfig
	Sheets      SheetsConfig
	XLSX        XLSXConfig
	S3          S3Config
	Render      RenderConfig
	Assets      AssetsConfig
	Declaration DeclarationConfig
	Log         LogConfig
	CORS        CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// SourceConfig selects where payment rows are read from.
type SourceConfig struct {
	Provider string `mapstructure:"provider"`
}

// SheetsConfig holds Google Sheets service-account settings.
type SheetsConfig struct {
	ServiceAccountEmail string `mapstructure:"service_account_email"`
	PrivateKey          string `mapstructure:"private_key"`
	SpreadsheetID       string `mapstructure:"spreadsheet_id"`
	SheetGID            int64  `mapstructure:"sheet_gid"`
}

// Configured reports whether all credentials needed to reach the spreadsheet are set.
func (s *SheetsConfig) Configured() bool {
	return s.ServiceAccountEmail != "" && s.PrivateKey != "" && s.SpreadsheetID != ""
}

// XLSXConfig points at a local spreadsheet export.
type XLSXConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

// S3Config holds AWS S3 settings for reading a spreadsheet export from a bucket.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Key       string `mapstructure:"key"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// RenderConfig holds PDF rendering settings.
type RenderConfig struct {
	Engine     string        `mapstructure:"engine"`
	ChromePath string        `mapstructure:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MarginMM   float64       `mapstructure:"margin_mm"`
}

// AssetsConfig points at the directory holding logo, signature and watermark images.
type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

// DeclarationConfig holds document settings.
type DeclarationConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location returns the configured time zone, falling back to UTC.
func (d *DeclarationConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the IRPF_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("IRPF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("source.provider", SourceSheets)

	// Sheets defaults
	v.SetDefault("sheets.service_account_email", "")
	v.SetDefault("sheets.private_key", "")
	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.sheet_gid", 972200278)

	v.SetDefault("xlsx.path", "data/pagamentos.xlsx")
	v.SetDefault("xlsx.sheet", "")

	// S3 defaults
	v.SetDefault("s3.region", "sa-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.key", "pagamentos.xlsx")
	v.SetDefault("s3.endpoint", "")

	// Render defaults
	v.SetDefault("render.engine", EngineChrome)
	v.SetDefault("render.chrome_path", "")
	v.SetDefault("render.timeout", "45s")
	v.SetDefault("render.margin_mm", 15)

	v.SetDefault("assets.dir", "data")
	v.SetDefault("declaration.timezone", "America/Sao_Paulo")

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	// Bind environment variables explicitly for nested keys. The unprefixed
	// names are the ones the service has always been deployed with.
	envBindings := map[string][]string{
		"server.port":                  {"IRPF_SERVER_PORT"},
		"server.read_timeout":          {"IRPF_SERVER_READ_TIMEOUT"},
		"server.write_timeout":         {"IRPF_SERVER_WRITE_TIMEOUT"},
		"server.environment":           {"IRPF_SERVER_ENVIRONMENT"},
		"source.provider":              {"IRPF_SOURCE_PROVIDER"},
		"sheets.service_account_email": {"IRPF_SHEETS_SERVICE_ACCOUNT_EMAIL", "GOOGLE_SERVICE_ACCOUNT_EMAIL"},
		"sheets.private_key":           {"IRPF_SHEETS_PRIVATE_KEY", "GOOGLE_PRIVATE_KEY"},
		"sheets.spreadsheet_id":        {"IRPF_SHEETS_SPREADSHEET_ID", "SPREADSHEET_ID"},
		"sheets.sheet_gid":             {"IRPF_SHEETS_SHEET_GID"},
		"xlsx.path":                    {"IRPF_XLSX_PATH"},
		"xlsx.sheet":                   {"IRPF_XLSX_SHEET"},
		"s3.region":                    {"IRPF_S3_REGION"},
		"s3.bucket":                    {"IRPF_S3_BUCKET"},
		"s3.key":                       {"IRPF_S3_KEY"},
		"s3.endpoint":                  {"IRPF_S3_ENDPOINT"},
		"s3.access_key":                {"IRPF_S3_ACCESS_KEY"},
		"s3.secret_key":                {"IRPF_S3_SECRET_KEY"},
		"render.engine":                {"IRPF_RENDER_ENGINE"},
		"render.chrome_path":           {"IRPF_RENDER_CHROME_PATH"},
		"render.timeout":               {"IRPF_RENDER_TIMEOUT"},
		"render.margin_mm":             {"IRPF_RENDER_MARGIN_MM"},
		"assets.dir":                   {"IRPF_ASSETS_DIR"},
		"declaration.timezone":         {"IRPF_DECLARATION_TIMEZONE"},
		"log.level":                    {"IRPF_LOG_LEVEL"},
		"log.format":                   {"IRPF_LOG_FORMAT"},
		"cors.allowed_origins":         {"IRPF_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if IRPF_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("IRPF_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Source = SourceConfig{
		Provider: strings.ToLower(strings.TrimSpace(v.GetString("source.provider"))),
	}
	cfg.Sheets = SheetsConfig{
		ServiceAccountEmail: v.GetString("sheets.service_account_email"),
		PrivateKey:          expandNewlines(v.GetString("sheets.private_key")),
		SpreadsheetID:       v.GetString("sheets.spreadsheet_id"),
		SheetGID:            v.GetInt64("sheets.sheet_gid"),
	}
	cfg.XLSX = XLSXConfig{
		Path:  v.GetString("xlsx.path"),
		Sheet: v.GetString("xlsx.sheet"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Key:       v.GetString("s3.key"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Render = RenderConfig{
		Engine:     strings.ToLower(strings.TrimSpace(v.GetString("render.engine"))),
		ChromePath: v.GetString("render.chrome_path"),
		Timeout:    v.GetDuration("render.timeout"),
		MarginMM:   v.GetFloat64("render.margin_mm"),
	}
	cfg.Assets = AssetsConfig{Dir: v.GetString("assets.dir")}
	cfg.Declaration = DeclarationConfig{Timezone: v.GetString("declaration.timezone")}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{AllowedOrigins: splitList(v.GetString("cors.allowed_origins"))}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural settings. Missing spreadsheet credentials are not
// an error here: the server still starts and reports itself as unconfigured.
func (c *Config) Validate() error {
	switch c.Source.Provider {
	case SourceSheets, SourceXLSX, SourceS3:
	default:
		return fmt.Errorf("invalid source provider %q: must be one of sheets, xlsx, s3", c.Source.Provider)
	}
	switch c.Render.Engine {
	case EngineChrome, EngineMaroto:
	default:
		return fmt.Errorf("invalid render engine %q: must be one of chrome, maroto", c.Render.Engine)
	}
	if c.Render.MarginMM < 0 || c.Render.MarginMM > 50 {
		return fmt.Errorf("invalid render margin %.1fmm: must be between 0 and 50", c.Render.MarginMM)
	}
	if c.Render.Timeout < 0 {
		return fmt.Errorf("invalid render timeout %s", c.Render.Timeout)
	}
	return nil
}

// SourceConfigured reports whether the active source provider has what it needs.
func (c *Config) SourceConfigured() bool {
	switch c.Source.Provider {
	case SourceSheets:
		return c.Sheets.Configured()
	case SourceXLSX:
		return c.XLSX.Path != ""
	case SourceS3:
		return c.S3.Bucket != "" && c.S3.Key != ""
	}
	return false
}

// expandNewlines turns the literal "\n" sequences that env files use for PEM
// keys back into newlines.
func expandNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de dados suportadas
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	ReportExport ReportExport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	AllowedOrigins    []string      `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source    string `mapstructure:"dataset_source"`
	Path      string `mapstructure:"dataset_path"`
	Sheet     string `mapstructure:"dataset_sheet"`
	Table     string `mapstructure:"dataset_table"`
	Delimiter string `mapstructure:"csv_delimiter"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Analytics struct {
	CurrencyLocale      string `mapstructure:"currency_locale"`
	DefaultForecastDays int    `mapstructure:"forecast_default_days"`
	TopProductsLimit    int    `mapstructure:"top_products_limit"`
}

type ReportExport struct {
	CronSchedule string `mapstructure:"report_export_cron"`
	OutputDir    string `mapstructure:"report_export_output_dir"`
	Enabled      bool   `mapstructure:"report_export_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("READ_HEADER_TIMEOUT", "2s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("APP_VERSION", "1.0")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_PATH", "data/vendas_farmacia.csv")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_TABLE", "vendas_farmacia")
	viper.SetDefault("CSV_DELIMITER", ",")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/farmacia?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CURRENCY_LOCALE", "pt-BR")
	viper.SetDefault("FORECAST_DEFAULT_DAYS", 7)
	viper.SetDefault("TOP_PRODUCTS_LIMIT", 10)

	viper.SetDefault("REPORT_EXPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_EXPORT_OUTPUT_DIR", "reports")
	viper.SetDefault("REPORT_EXPORT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case SourceCSV, SourceXLSX, SourcePostgres:
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q (valores aceitos: csv, xlsx, postgres)", c.Dataset.Source)
	}

	if len([]rune(c.Dataset.Delimiter)) != 1 {
		return fmt.Errorf("CSV_DELIMITER deve ter exatamente um caractere: %q", c.Dataset.Delimiter)
	}

	if c.Analytics.DefaultForecastDays < 0 {
		return fmt.Errorf("FORECAST_DEFAULT_DAYS não pode ser negativo: %d", c.Analytics.DefaultForecastDays)
	}

	if c.Analytics.TopProductsLimit < 0 {
		return fmt.Errorf("TOP_PRODUCTS_LIMIT não pode ser negativo: %d", c.Analytics.TopProductsLimit)
	}

	return nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

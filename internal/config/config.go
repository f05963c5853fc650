package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Engine         Engine         `mapstructure:",squash"`
	ROIRankingSync ROIRankingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Engine concentra os parâmetros padrão do motor de valorização de
// oportunidades
type Engine struct {
	WeeksInPeriod             float64 `mapstructure:"engine_weeks_in_period"`
	MaxConcurrentPricingCalls int     `mapstructure:"engine_max_concurrent_pricing_calls"`
	DefaultCostPerExhibition  float64 `mapstructure:"engine_default_cost_per_exhibition"`
	DefaultSalesLiftFraction  float64 `mapstructure:"engine_default_sales_lift_fraction"`
	DefaultDaysInMonth        int     `mapstructure:"engine_default_days_in_month"`
}

type ROIRankingSync struct {
	CronSchedule string `mapstructure:"roi_ranking_sync_cron"`
	SyncEnabled  bool   `mapstructure:"roi_ranking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retailops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do motor de valorização
	viper.SetDefault("ENGINE_WEEKS_IN_PERIOD", 4.0)                // Período de referência de 4 semanas
	viper.SetDefault("ENGINE_MAX_CONCURRENT_PRICING_CALLS", 5)     // Chamadas concorrentes à função de precificação
	viper.SetDefault("ENGINE_DEFAULT_COST_PER_EXHIBITION", 2500.0) // Custo padrão por exibição em pesos
	viper.SetDefault("ENGINE_DEFAULT_SALES_LIFT_FRACTION", 0.15)   // 15% de aumento esperado nas vendas
	viper.SetDefault("ENGINE_DEFAULT_DAYS_IN_MONTH", 30)

	// Defaults do agendador do snapshot de ranking por ROI
	viper.SetDefault("ROI_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("ROI_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

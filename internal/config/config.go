package config

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config concentra toda a configuração de runtime, carregada de variáveis
// de ambiente. Cada campo mapeia 1:1 para uma env var documentada.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Persistência
	DataDir string `mapstructure:"DATA_DIR"`

	// Negócio
	// PlatformFeeRate é a fração de acréscimo aplicada ao preço unitário
	// de pedidos iFood (0.20 = 20%).
	PlatformFeeRate float64 `mapstructure:"PLATFORM_FEE_RATE"`

	// Rate limit geral da API (requisições por minuto por IP)
	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`
}

// TaxaPlataforma devolve a taxa como decimal para o cálculo de preços.
func (c *Config) TaxaPlataforma() decimal.Decimal {
	return decimal.NewFromFloat(c.PlatformFeeRate)
}

// Load lê a configuração do ambiente (e de um .env opcional).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults razoáveis para desenvolvimento
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PLATFORM_FEE_RATE", 0.20)
	viper.SetDefault("RATE_LIMIT_PER_MIN", 1000)

	// .env opcional para desenvolvimento local — ausência não é erro
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

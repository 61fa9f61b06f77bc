package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config representa a configuração completa da aplicação
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Auth      AuthConfig
	Assistant AssistantConfig
	Logging   LoggingConfig
}

// ServerConfig contém configurações do servidor HTTP
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig contém configurações do armazenamento local
type StorageConfig struct {
	// Dir é o diretório onde os snapshots JSON das coleções são gravados
	Dir string
	// Seed habilita a carga dos dados iniciais quando o diretório está vazio
	Seed bool
}

// AuthConfig contém configurações de autenticação
type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
}

// AssistantConfig contém configurações do assistente de compras
type AssistantConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// LoggingConfig contém configurações de logging
type LoggingConfig struct {
	Level string
}

// LoadConfig carrega a configuração de arquivo, variáveis de ambiente e defaults
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		// Ignorar se o arquivo não for encontrado
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	// Ler variáveis de ambiente com prefixo QO_
	v.SetEnvPrefix("QO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("erro ao mapear configuração: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults define valores padrão para a configuração
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "5s")
	v.SetDefault("server.writeTimeout", "10s")

	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.seed", true)

	// Registrar as chaves sem valor padrão para que possam vir só do
	// ambiente (QO_AUTH_JWTSECRET, QO_ASSISTANT_APIKEY)
	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenExpiration", "24h")

	v.SetDefault("assistant.apiKey", "")
	v.SetDefault("assistant.model", "claude-3-sonnet-20240229")
	v.SetDefault("assistant.maxTokens", 1024)
	v.SetDefault("assistant.timeout", "30s")

	v.SetDefault("logging.level", "info")
}

// validateConfig valida a configuração carregada
func validateConfig(c *Config) error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("porta do servidor inválida: %d", c.Server.Port)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("diretório de armazenamento não configurado")
	}
	return nil
}

package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// KafkaConfig holds event streaming settings.
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	GroupPrefix string
}

// ServiceConfig holds all configuration for the reservation service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	SeedDemoData bool
	Kafka        KafkaConfig
}

// Load reads configuration from defaults, then an optional config.yaml
// (searched in . and ./configs), then RESERVATION_-prefixed environment
// variables, each layer overriding the previous one. A missing config file
// is not an error.
func Load() (*ServiceConfig, error) {
	v := viper.New()

	v.SetDefault("service_port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("seed_demo_data", true)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.group_prefix", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("RESERVATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &ServiceConfig{
		Port:         normalizePort(v.GetString("service_port")),
		AppEnv:       v.GetString("app_env"),
		SeedDemoData: v.GetBool("seed_demo_data"),
		Kafka: KafkaConfig{
			Enabled:     v.GetBool("kafka.enabled"),
			Brokers:     splitBrokers(v.GetString("kafka.brokers")),
			GroupPrefix: v.GetString("kafka.group_prefix"),
		},
	}, nil
}

// normalizePort accepts "8080" or ":8080" and returns a listen address.
func normalizePort(port string) string {
	if port == "" {
		return ":8080"
	}
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

// splitBrokers turns a comma-separated broker list into its parts.
func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

package logger

import "go.uber.org/zap"

// NewNamed builds a zap logger for the given environment and names it after
// the service. Production uses the JSON encoder; any other environment gets
// the human-readable development encoder.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}

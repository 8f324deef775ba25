package config

import (
	"errors"
)

// ServiceConfig identifies the service instance on the wire. The monorepo
// this service originates from runs several siblings of the same scaffold
// that differ only in the reported name, so the identity is configuration
// rather than a compile-time constant.
type ServiceConfig struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Environment string `json:"environment" yaml:"environment"`
}

// DefaultServiceConfig returns the default service identity
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:        "api-python",
		Version:     "1.0.0",
		Environment: "production",
	}
}

// Validate validates the service configuration
func (s *ServiceConfig) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("name cannot be empty"))
	}
	if s.Version == "" {
		errs = append(errs, errors.New("version cannot be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

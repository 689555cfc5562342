package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	CSVPath         string
	OperatorWorkers int
	LogLevel        string
}

// ProcessEnvironmentVariables reads configuration from the environment. A .env
// file in the working directory is loaded first when present; variables that
// are already set win over it.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := Config{
		Port:            "8385",
		OperatorWorkers: 1,
		LogLevel:        "info",
	}

	envPort := os.Getenv("PORT")
	envCSVPath := os.Getenv("CSV_PATH")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envCSVPath) != 0 {
		env.CSVPath = envCSVPath
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", envOperatorWorkers, err)
		}
		env.OperatorWorkers = workers
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

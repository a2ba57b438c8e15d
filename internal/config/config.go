package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL    string
	LogLevel       string
	Debug          bool
	ServiceName    string
	Environment    string
	Hostname       string
	Port           string
	WorkerCount    int
	QueueCapacity  int
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	debug := os.Getenv("DEBUG")
	if debug == "" {
		debug = "false"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "bankroll-api"
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "bankroll-api"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	workerCount := 4 // default value
	if wc := os.Getenv("WORKER_COUNT"); wc != "" {
		if parsed, err := strconv.Atoi(wc); err == nil {
			workerCount = parsed
		}
	}

	queueCapacity := 100 // default value
	if qc := os.Getenv("QUEUE_CAPACITY"); qc != "" {
		if parsed, err := strconv.Atoi(qc); err == nil {
			queueCapacity = parsed
		}
	}

	allowedOrigins := []string{"*"}
	if ao := os.Getenv("ALLOWED_ORIGINS"); ao != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, origin := range strings.Split(ao, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	return &Config{
		DatabaseURL:    databaseURL,
		LogLevel:       logLevel,
		Debug:          debug == "true",
		ServiceName:    serviceName,
		Environment:    environment,
		Hostname:       hostname,
		Port:           port,
		WorkerCount:    workerCount,
		QueueCapacity:  queueCapacity,
		AllowedOrigins: allowedOrigins,
	}, nil
}

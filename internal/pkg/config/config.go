package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PlatformConfig struct {
	GitHubAPIBase        string
	LeetCodeStatsAPIBase string
	LeetCodeAltAPIBase   string
	LeetCodeGraphQLURL   string
	HackerRankAPIBase    string
}

type Config struct {
	Postgres       *PostgresConfig
	Platforms      *PlatformConfig
	LogFilePath    string
	MigrationsPath string
	AppPort        string
	Debug          bool
	Delay          time.Duration
	SyncWorkers    int
}

// Load reads configuration from environment variables
func Load() *Config {
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}

	return &Config{
		Postgres: &PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     pgPort,
			User:     getEnv("POSTGRES_USER", "edugrow_user"),
			Password: getEnv("POSTGRES_PASSWORD", "edugrow_pwd"),
			DBName:   getEnv("POSTGRES_DB", "edugrow"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},

		Platforms: &PlatformConfig{
			GitHubAPIBase:        getEnv("GITHUB_API_BASE", "https://api.github.com"),
			LeetCodeStatsAPIBase: getEnv("LEETCODE_STATS_API_BASE", "https://leetcode-stats-api.herokuapp.com"),
			LeetCodeAltAPIBase:   getEnv("LEETCODE_ALT_API_BASE", "https://alfa-leetcode-api.onrender.com"),
			LeetCodeGraphQLURL:   getEnv("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql"),
			HackerRankAPIBase:    getEnv("HACKERRANK_API_BASE", "https://www.hackerrank.com"),
		},

		LogFilePath:    getEnv("LOG_FILE_PATH", "app.log"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		AppPort:        getEnv("APP_PORT", "8888"),
		Debug:          getEnv("DEBUG", "false") == "true",
		Delay:          getTimeEnv("SYNC_DELAY_MS", 120, time.Millisecond),
		SyncWorkers:    getIntEnv("SYNC_WORKERS", 4),
	}
}

// Helper to get env var or default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if valueInt, err := strconv.Atoi(value); err == nil {
			return valueInt
		}
	}
	return defaultValue
}

func getTimeEnv(key string, defaultValue int, duration time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		valueInt, _ := strconv.Atoi(value)
		return duration * time.Duration(valueInt)
	}

	return time.Duration(defaultValue) * duration
}

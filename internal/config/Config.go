package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	DefaultHost                = "0.0.0.0"
	DefaultPort                = "6997"
	DefaultRows                = 20
	DefaultCols                = 20
	DefaultExploreDelay        = 20 * time.Millisecond
	DefaultPathDelay           = 30 * time.Millisecond
	DefaultHistoryDBPath       = "runs.db"
	DefaultMaxConnectionsPerIP = 2
	DefaultAlgorithm           = "astar"

	MaxRows = 200
	MaxCols = 200
)

// Config holds the settings shared by the local runner and the SSH server.
type Config struct {
	Host                string        // Address the SSH server binds to
	Port                string        // Port the SSH server listens on
	HostKeyPath         string        // Path to the SSH host key, generated when missing
	Rows                int           // Default grid rows offered by the setup form
	Cols                int           // Default grid columns offered by the setup form
	ExploreDelay        time.Duration // Pause after each exploration frame
	PathDelay           time.Duration // Pause after each path frame
	HistoryDBPath       string        // SQLite file for run history, set but empty disables it
	PatternDir          string        // Directory with extra *.lua wall patterns
	MaxConnectionsPerIP int           // Concurrent SSH sessions allowed per client IP
	LogLevel            string        // debug, info, warn or error
	Algorithm           string        // Algorithm selected when a grid opens
}

// Load reads an optional .env file and then the PATHVIZ_* environment
// variables. Unparseable values fall back to their defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded", "error", err)
	}

	return Config{
		Host:                getEnvWithDefault("PATHVIZ_HOST", DefaultHost),
		Port:                getEnvWithDefault("PATHVIZ_PORT", DefaultPort),
		HostKeyPath:         getEnvWithDefault("PATHVIZ_PRIVATE_KEY_PATH", ".ssh/pathviz_ed25519"),
		Rows:                clamp(getEnvAsIntWithDefault("PATHVIZ_ROWS", DefaultRows), 1, MaxRows),
		Cols:                clamp(getEnvAsIntWithDefault("PATHVIZ_COLS", DefaultCols), 1, MaxCols),
		ExploreDelay:        getEnvAsDurationWithDefault("PATHVIZ_EXPLORE_DELAY", DefaultExploreDelay),
		PathDelay:           getEnvAsDurationWithDefault("PATHVIZ_PATH_DELAY", DefaultPathDelay),
		HistoryDBPath:       getEnvAllowEmpty("PATHVIZ_HISTORY_DB", DefaultHistoryDBPath),
		PatternDir:          getEnvWithDefault("PATHVIZ_PATTERN_DIR", ""),
		MaxConnectionsPerIP: max(1, getEnvAsIntWithDefault("PATHVIZ_MAX_CONNECTIONS_PER_IP", DefaultMaxConnectionsPerIP)),
		LogLevel:            getEnvWithDefault("PATHVIZ_LOG_LEVEL", "info"),
		Algorithm:           getEnvWithDefault("PATHVIZ_ALGORITHM", DefaultAlgorithm),
	}
}

// Address joins host and port for the SSH listener.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// Level maps LogLevel onto a charmbracelet/log level, defaulting to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty keeps a value that is set but empty, which switches the
// setting off.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn("Ignoring non-integer setting", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value < 0 {
		log.Warn("Ignoring invalid duration setting", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}

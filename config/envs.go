package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	TicketSecret     string // Secret key for signing maze tickets
	TicketIssuer     string // Issuer claim for maze tickets
	TicketTTLMinutes int    // Lifetime of a maze ticket
	MazeMaxDimension int    // Largest width or height a client may request
	MazeBatchLimit   int    // Largest number of mazes in one batch request
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("%s[APP]%s [INFO] .env file not found or could not be loaded: %v", ColorGreen, ColorReset, err)
	}

	return Config{
		HostIP:           mustGetEnv("HOST_IP"),
		RESTPort:         mustGetEnvAsInt("REST_PORT"),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		TicketSecret:     mustGetEnv("TICKET_SECRET"),
		TicketIssuer:     getEnvWithDefault("TICKET_ISSUER", "vinom-maze"),
		TicketTTLMinutes: getEnvAsIntWithDefault("TICKET_TTL_MINUTES", 60),
		MazeMaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 200),
		MazeBatchLimit:   getEnvAsIntWithDefault("MAZE_BATCH_LIMIT", 16),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s is not set", ColorGreen, ColorReset, LogErrorColor, LogColorReset, key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for positive integers. Unparsable or
// non-positive values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("[APP] [WARNING] Environment variable %s=%q is not a positive integer, using %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

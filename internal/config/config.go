package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDriver      string // Database driver: mysql or sqlite
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	DBPath        string // SQLite database file
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	IsProd        bool   // Is production environment
	LogLevel      string // Logrus level name
	SettleScope   string // Raw SETTLE_SCOPE, parsed by game.ParseScope
	CORSOrigin    string // Origin allowed to call the API from a browser
	AdminUsername string // Seeded admin username (optional)
	AdminEmail    string // Seeded admin email (optional)
	AdminPassword string // Seeded admin password (optional)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getEnv("APP_PORT", "2000"),                     // Application port
		DBDriver:      getEnv("DB_DRIVER", "mysql"),                   // Database driver
		DBUser:        os.Getenv("DB_USER"),                           // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                       // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),                 // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                      // Database port
		DBName:        getEnv("DB_NAME", "number_game"),               // Database name
		DBPath:        getEnv("DB_PATH", "number_game.db"),            // SQLite file
		JWTSecret:     os.Getenv("JWT_SECRET"),                        // JWT secret key
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),         // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                        // Redis password
		RedisDB:       redisDB,                                        // Redis database number
		IsProd:        os.Getenv("IS_PROD") == "true",                 // Is production environment
		LogLevel:      getEnv("LOG_LEVEL", "info"),                    // Log level
		SettleScope:   getEnv("SETTLE_SCOPE", "all"),                  // Settlement scope
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"), // Browser origin
		AdminUsername: os.Getenv("ADMIN_USERNAME"),                    // Seeded admin username
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),                       // Seeded admin email
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),                    // Seeded admin password
	}
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// SeedAdmin reports whether an admin account should be created at migration time
func (c *Config) SeedAdmin() bool {
	return c.AdminUsername != "" && c.AdminEmail != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

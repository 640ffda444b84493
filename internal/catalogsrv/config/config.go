// Package config loads and validates the service configuration from a
// TOML file, with secrets supplied through CAMPUS_* environment
// variables so they never live in the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

// Version is the supported config file format version.
const Version = "0.1.0"

// SessionConfig holds admin session configuration
type SessionConfig struct {
	ExpirationTime string `toml:"expiration_time"` // How long a login session stays valid
	CookieName     string `toml:"cookie_name"`     // Name of the session cookie
	CookieSecure   bool   `toml:"cookie_secure"`   // Whether to mark the cookie Secure
	SigningSecret  string `toml:"-"`               // HMAC secret for session tokens, from CAMPUS_SESSION_SECRET
}

// GetExpirationTime returns the session expiration time as time.Duration
func (s *SessionConfig) GetExpirationTime() (time.Duration, error) {
	return ParseDuration(s.ExpirationTime)
}

// GetExpirationTimeOrDefault returns the session expiration time as time.Duration
// or panics if the value is invalid
func (s *SessionConfig) GetExpirationTimeOrDefault() time.Duration {
	duration, err := s.GetExpirationTime()
	if err != nil {
		panic(fmt.Sprintf("invalid session expiration time: %v", err))
	}
	return duration
}

// AuthConfig holds admin credential configuration. The credentials
// themselves come from the environment; only policy lives in the file.
type AuthConfig struct {
	AdminUsername     string `toml:"-"` // From CAMPUS_ADMIN_USERNAME
	AdminPasswordHash []byte `toml:"-"` // bcrypt hash of CAMPUS_ADMIN_PASSWORD
	APISharedSecret   string `toml:"-"` // From CAMPUS_API_SHARED_SECRET; empty disables bearer auth
}

// UploadConfig holds image upload configuration
type UploadConfig struct {
	Dir           string `toml:"dir"`             // Directory uploaded files are written to
	PublicPrefix  string `toml:"public_prefix"`   // URL path prefix the directory is served under
	MaxUploadSize int64  `toml:"max_upload_size"` // Maximum size of an uploaded file in bytes
}

// ConfigParam holds all configuration parameters for the campus service
type ConfigParam struct {
	// Configuration version
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// Server configuration
	ServerHostName     string `toml:"server_hostname"`       // Hostname for the server
	ServerPort         string `toml:"server_port"`           // Port for the main server
	HandleCORS         bool   `toml:"handle_cors"`           // Whether to handle CORS
	MaxRequestBodySize int64  `toml:"max_request_body_size"` // Maximum size of request body in bytes

	// Session configuration
	Session SessionConfig `toml:"session"`

	// Auth configuration
	Auth AuthConfig `toml:"auth"`

	// Upload configuration
	Upload UploadConfig `toml:"upload"`

	// Database configuration
	DB struct {
		Host               string   `toml:"host"`                 // Database host
		Port               int      `toml:"port"`                 // Database port
		DBName             string   `toml:"dbname"`               // Database name
		User               string   `toml:"user"`                 // Database user
		Password           string   `toml:"-"`                    // Database password, from CAMPUS_DB_PASSWORD
		SSLMode            string   `toml:"sslmode"`              // SSL mode for database connection
		DNSFallbackServers []string `toml:"dns_fallback_servers"` // Resolvers tried when host lookup fails on connect
	} `toml:"db"`
}

var cfg *ConfigParam

// Config returns the current configuration
func Config() *ConfigParam {
	return cfg
}

// DSN returns the database connection string
func (c *ConfigParam) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.DBName, c.DB.SSLMode)
}

// CampusDSN returns the DSN for the campus database
func CampusDSN() string {
	return cfg.DSN()
}

// ParseDuration parses a duration string in the format "<number><unit>" where unit can be:
// - y: years
// - d: days
// - h: hours
// - m: minutes
func ParseDuration(input string) (time.Duration, error) {
	if len(input) < 2 {
		return 0, fmt.Errorf("invalid input format")
	}

	// Extract the unit and the value from the input string
	unit := input[len(input)-1:]
	valueStr := input[:len(input)-1]
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", err)
	}

	// Convert the value to a duration based on the unit
	var duration time.Duration
	switch unit {
	case "d":
		duration = time.Duration(value) * 24 * time.Hour
	case "h":
		duration = time.Duration(value) * time.Hour
	case "m":
		duration = time.Duration(value) * time.Minute
	case "y":
		// Assuming 1 year = 365 days for simplicity
		duration = time.Duration(value) * 365 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown time unit: %s", unit)
	}

	return duration, nil
}

// ValidateConfig checks if all required configuration values are present and valid
func ValidateConfig(cfg *ConfigParam) error {
	if err := validateConfigFormatVersion(cfg); err != nil {
		return err
	}
	if err := validateServerConfig(cfg); err != nil {
		return err
	}
	if err := validateSessionConfig(cfg); err != nil {
		return err
	}
	if err := validateAuthConfig(cfg); err != nil {
		return err
	}
	if err := validateUploadConfig(cfg); err != nil {
		return err
	}
	if err := validateDBConfig(cfg); err != nil {
		return err
	}
	return nil
}

func validateConfigFormatVersion(cfg *ConfigParam) error {
	if cfg.FormatVersion != Version {
		return fmt.Errorf("unsupported config file format version: %s", cfg.FormatVersion)
	}
	return nil
}

func validateServerConfig(cfg *ConfigParam) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 2 << 20 // 2MB
	}
	return nil
}

func validateSessionConfig(cfg *ConfigParam) error {
	if cfg.Session.ExpirationTime == "" {
		return fmt.Errorf("session.expiration_time is required")
	}
	if _, err := ParseDuration(cfg.Session.ExpirationTime); err != nil {
		return fmt.Errorf("invalid session.expiration_time: %v", err)
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session"
	}
	if cfg.Session.SigningSecret == "" {
		return fmt.Errorf("CAMPUS_SESSION_SECRET must be set")
	}
	return nil
}

func validateAuthConfig(cfg *ConfigParam) error {
	if cfg.Auth.AdminUsername == "" {
		return fmt.Errorf("CAMPUS_ADMIN_USERNAME must be set")
	}
	if len(cfg.Auth.AdminPasswordHash) == 0 {
		return fmt.Errorf("CAMPUS_ADMIN_PASSWORD must be set")
	}
	return nil
}

func validateUploadConfig(cfg *ConfigParam) error {
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = filepath.Join("public", "uploads", "courses")
	}
	if cfg.Upload.PublicPrefix == "" {
		cfg.Upload.PublicPrefix = "/uploads/courses"
	}
	if cfg.Upload.MaxUploadSize <= 0 {
		cfg.Upload.MaxUploadSize = 5 << 20 // 5MB
	}
	return nil
}

func validateDBConfig(cfg *ConfigParam) error {
	if cfg.DB.Host == "" {
		return fmt.Errorf("db.host is required")
	}
	if cfg.DB.Port <= 0 {
		return fmt.Errorf("db.port must be positive")
	}
	if cfg.DB.DBName == "" {
		return fmt.Errorf("db.dbname is required")
	}
	if cfg.DB.User == "" {
		return fmt.Errorf("db.user is required")
	}
	if cfg.DB.SSLMode == "" {
		return fmt.Errorf("db.sslmode is required")
	}
	if len(cfg.DB.DNSFallbackServers) == 0 {
		cfg.DB.DNSFallbackServers = []string{"8.8.8.8:53", "1.1.1.1:53"}
	}
	return nil
}

// loadEnvSecrets pulls secret material from the environment into the
// config. The admin password is bcrypt-hashed immediately so the
// plaintext is never retained.
func loadEnvSecrets(cfg *ConfigParam) error {
	cfg.DB.Password = os.Getenv("CAMPUS_DB_PASSWORD")
	cfg.Session.SigningSecret = os.Getenv("CAMPUS_SESSION_SECRET")
	cfg.Auth.AdminUsername = os.Getenv("CAMPUS_ADMIN_USERNAME")
	cfg.Auth.APISharedSecret = os.Getenv("CAMPUS_API_SHARED_SECRET")

	if passwd := os.Getenv("CAMPUS_ADMIN_PASSWORD"); passwd != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwd), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("error hashing admin password: %v", err)
		}
		cfg.Auth.AdminPasswordHash = hash
	}
	return nil
}

// LoadConfig loads configuration from a file
func LoadConfig(filename string) error {
	if filename == "" {
		return fmt.Errorf("config filename is required")
	}

	// Read and parse the config file
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	c := &ConfigParam{}
	if _, err := toml.Decode(string(content), c); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	if err := loadEnvSecrets(c); err != nil {
		return err
	}

	// Validate the configuration
	if err := ValidateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	cfg = c
	return nil
}

var isTest = false

func IsTest() bool {
	return isTest
}

func SetTestMode(test bool) {
	isTest = test
}

func TestInit() {
	isTest = true
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	// Check if we're already in the project root by looking for go.mod
	projectRoot := wd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			panic("could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	// Tests run without deployment secrets; provide working defaults.
	setIfUnset("CAMPUS_SESSION_SECRET", "test-session-secret")
	setIfUnset("CAMPUS_ADMIN_USERNAME", "admin")
	setIfUnset("CAMPUS_ADMIN_PASSWORD", "admin-test-password")
	setIfUnset("CAMPUS_API_SHARED_SECRET", "test-shared-secret")
	setIfUnset("CAMPUS_DB_PASSWORD", "postgres")

	if err := LoadConfig(filepath.Join(projectRoot, "campussrv.conf")); err != nil {
		panic(fmt.Errorf("error loading config: %v", err))
	}
}

func setIfUnset(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

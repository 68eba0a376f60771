package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		AdminTo  string `mapstructure:"admin_to"`
	} `mapstructure:"smtp"`

	Relay struct {
		Endpoint  string `mapstructure:"endpoint"`
		AccessKey string `mapstructure:"access_key"`
		FromName  string `mapstructure:"from_name"`
	} `mapstructure:"relay"`

	Storage struct {
		Endpoint      string `mapstructure:"endpoint"`
		AccessKey     string `mapstructure:"access_key"`
		SecretKey     string `mapstructure:"secret_key"`
		Bucket        string `mapstructure:"bucket"`
		Region        string `mapstructure:"region"`
		PublicBaseURL string `mapstructure:"public_base_url"`
	} `mapstructure:"storage"`

	Seed struct {
		AdminEmail    string `mapstructure:"admin_email"`
		AdminPassword string `mapstructure:"admin_password"`
	} `mapstructure:"seed"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "insure-backend")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "insure_db")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("relay.endpoint", "https://api.web3forms.com/submit")
	v.SetDefault("relay.from_name", "GK Insurance Website")
	v.SetDefault("storage.region", "auto")
	v.SetDefault("seed.admin_email", "admin@gkinsurance.local")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override database settings from DB_* environment variables
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	// JWT secret must come from somewhere
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			log.Fatal("JWT_SECRET not set in environment or config")
		}
	}

	// Notification email credentials (optional - quote emails are skipped without them)
	if user := os.Getenv("SMTP_USER"); user != "" {
		cfg.SMTP.User = user
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if to := os.Getenv("SMTP_ADMIN_TO"); to != "" {
		cfg.SMTP.AdminTo = to
	}
	if cfg.SMTP.AdminTo == "" {
		cfg.SMTP.AdminTo = cfg.SMTP.User
	}

	// Form relay access key (optional - relay is skipped without it)
	if key := os.Getenv("RELAY_ACCESS_KEY"); key != "" {
		cfg.Relay.AccessKey = key
	}

	// Logo object storage (optional - upload endpoint disabled without it)
	if endpoint := os.Getenv("STORAGE_ENDPOINT"); endpoint != "" {
		cfg.Storage.Endpoint = endpoint
	}
	if key := os.Getenv("STORAGE_ACCESS_KEY"); key != "" {
		cfg.Storage.AccessKey = key
	}
	if secret := os.Getenv("STORAGE_SECRET_KEY"); secret != "" {
		cfg.Storage.SecretKey = secret
	}
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		cfg.Storage.Bucket = bucket
	}
	if base := os.Getenv("STORAGE_PUBLIC_BASE_URL"); base != "" {
		cfg.Storage.PublicBaseURL = base
	}

	// First-run admin account
	if email := os.Getenv("SEED_ADMIN_EMAIL"); email != "" {
		cfg.Seed.AdminEmail = email
	}
	if pass := os.Getenv("SEED_ADMIN_PASSWORD"); pass != "" {
		cfg.Seed.AdminPassword = pass
	}

	return &cfg
}

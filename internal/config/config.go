package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	// provider
	HeyGenAPIKey    string
	HeyGenBaseURL   string
	HeyGenUploadURL string

	// database
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// http
	ServerPort   int
	JWTPublicKey string

	// redis (cache + task queue); empty addr disables both
	RedisAddr     string
	RedisPassword string

	// object storage for archived videos
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	ArchiveBucket  string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("HEYGEN_BASE_URL", "https://api.heygen.com")
	viper.SetDefault("HEYGEN_UPLOAD_URL", "https://upload.heygen.com")
	viper.SetDefault("ARCHIVE_BUCKET", "videos")

	if !viper.IsSet("HEYGEN_API_KEY") {
		return nil, fmt.Errorf("HEYGEN_API_KEY is required")
	}
	if !viper.IsSet("MARIADB_DSN") {
		return nil, fmt.Errorf("MARIADB_DSN is required")
	}
	if !viper.IsSet("MARIADB_MAX_OPEN_CONN") {
		return nil, fmt.Errorf("MARIADB_MAX_OPEN_CONN is required")
	}
	if !viper.IsSet("MARIADB_MAX_IDLE_CONNS") {
		return nil, fmt.Errorf("MARIADB_MAX_IDLE_CONNS is required")
	}
	if !viper.IsSet("MARIADB_CONN_MAX_LIFETIME") {
		return nil, fmt.Errorf("MARIADB_CONN_MAX_LIFETIME is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	return &Settings{
		HeyGenAPIKey:    viper.GetString("HEYGEN_API_KEY"),
		HeyGenBaseURL:   viper.GetString("HEYGEN_BASE_URL"),
		HeyGenUploadURL: viper.GetString("HEYGEN_UPLOAD_URL"),
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		JWTPublicKey:    viper.GetString("JWT_PUBLIC_KEY"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		ArchiveBucket:   viper.GetString("ARCHIVE_BUCKET"),
	}, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type EnvConfig struct {
	Postgres struct {
		HOST     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Algorithm string
		Expire    int
	}
	CORS struct {
		AllowDomains string
		GlobalDomain string
	}
	Redis struct {
		Password  string
		Database  int
		RedisHost string
		RedisPort string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		UseSSL       bool
	}
	S3 struct {
		Endpoint        string
		Region          string
		AccessKeyID     string
		SecretAccessKey string
	}
	Storage struct {
		Provider          string // minio or s3
		TemplateContainer string
		PublicBaseURL     string
		TempDir           string
	}
	Azure struct {
		TenantID       string
		ClientID       string
		ClientSecret   string
		SubscriptionID string
		ResourceGroup  string
		Location       string
	}
	Docker struct {
		PullImageDelay time.Duration
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}

	Environment struct {
		Mode  string
		Group string
	}
	DomainName string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.HOST = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	config.JWT.Algorithm = os.Getenv("JWT_ALGORITHM")

	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		fmt.Sscanf(val, "%d", &config.JWT.Expire)
	} else {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")
	config.CORS.GlobalDomain = os.Getenv("GLOBAL_DOMAIN")

	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.RedisHost = os.Getenv("REDIS_HOST")
	config.Redis.RedisPort = os.Getenv("REDIS_PORT")

	// RabbitMQ
	config.RabbitMQ.Host = getEnv("RABBITMQ_HOST", "localhost")
	config.RabbitMQ.Port = getEnv("RABBITMQ_PORT", "5672")
	config.RabbitMQ.Username = getEnv("RABBITMQ_USER", "guest")
	config.RabbitMQ.Password = getEnv("RABBITMQ_PASSWORD", "guest")

	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UseSSL = os.Getenv("MINIO_USE_SSL") == "true"

	config.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	config.S3.Region = getEnv("S3_REGION", "us-east-1")
	config.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	config.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")

	// Template storage
	config.Storage.Provider = strings.ToLower(getEnv("STORAGE_PROVIDER", "minio"))
	config.Storage.TemplateContainer = getEnv("STORAGE_TEMPLATE_CONTAINER", "templates")
	config.Storage.PublicBaseURL = strings.TrimSuffix(os.Getenv("STORAGE_PUBLIC_BASE_URL"), "/")
	config.Storage.TempDir = os.Getenv("TEMPLATE_TEMP_DIR")
	if config.Storage.PublicBaseURL == "" && config.Minio.Endpoint != "" {
		scheme := "http://"
		if config.Minio.UseSSL {
			scheme = "https://"
		}
		config.Storage.PublicBaseURL = scheme + config.Minio.Endpoint
	}

	// Azure
	config.Azure.TenantID = os.Getenv("AZURE_TENANT_ID")
	config.Azure.ClientID = os.Getenv("AZURE_CLIENT_ID")
	config.Azure.ClientSecret = os.Getenv("AZURE_CLIENT_SECRET")
	config.Azure.SubscriptionID = os.Getenv("AZURE_SUBSCRIPTION_ID")
	config.Azure.ResourceGroup = os.Getenv("AZURE_RESOURCE_GROUP")
	config.Azure.Location = getEnv("AZURE_LOCATION", "eastasia")

	config.Docker.PullImageDelay = 2 * time.Second
	if val := os.Getenv("DOCKER_PULL_IMAGE_DELAY_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil && seconds >= 0 {
			config.Docker.PullImageDelay = time.Duration(seconds) * time.Second
		}
	}

	// Grafana/OpenTelemetry
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	// Remove protocol for OpenTelemetry client to avoid duplicate protocols
	grafanaEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	config.Grafana.ServiceName = getEnv("SERVICE_NAME", "gau-hackathon-service")

	config.Environment.Mode = getEnv("DEPLOY_ENV", "development")
	config.Environment.Group = getEnv("GROUP_NAME", "local")

	config.DomainName = getEnv("DOMAIN_NAME", "localhost:8080")

	return &config
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

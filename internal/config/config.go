package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Redis      Redis
	Prometheus Prometheus
	Storage    Storage
	Upload     Upload
	Cache      Cache
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Prometheus struct {
	Address string
	Port    int
}

type Storage struct {
	Backend   string // memory, fs or s3
	PublicURL string
	FS        FSStorage
	S3        S3Storage
}

type FSStorage struct {
	BaseDir string
}

type S3Storage struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
}

type Upload struct {
	MaxFileSize int64 // bytes
}

type Cache struct {
	PostTTLSeconds int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8082)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "post-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "qdpost")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	viper.SetDefault("storage.backend", "fs")
	viper.SetDefault("storage.public_url", "http://localhost:8082/media")
	viper.SetDefault("storage.fs.base_dir", "./uploads")
	viper.SetDefault("storage.s3.region", "us-east-1")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.access_key_id", "")
	viper.SetDefault("storage.s3.secret_access_key", "")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.use_path_style", false)

	viper.SetDefault("upload.max_file_size", 64<<20)

	viper.SetDefault("cache.post_ttl_seconds", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %s", err)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Storage: Storage{
			Backend:   viper.GetString("storage.backend"),
			PublicURL: viper.GetString("storage.public_url"),
			FS: FSStorage{
				BaseDir: viper.GetString("storage.fs.base_dir"),
			},
			S3: S3Storage{
				Region:          viper.GetString("storage.s3.region"),
				Bucket:          viper.GetString("storage.s3.bucket"),
				AccessKeyID:     viper.GetString("storage.s3.access_key_id"),
				SecretAccessKey: viper.GetString("storage.s3.secret_access_key"),
				Endpoint:        viper.GetString("storage.s3.endpoint"),
				UsePathStyle:    viper.GetBool("storage.s3.use_path_style"),
			},
		},
		Upload: Upload{
			MaxFileSize: viper.GetInt64("upload.max_file_size"),
		},
		Cache: Cache{
			PostTTLSeconds: viper.GetInt("cache.post_ttl_seconds"),
		},
	}

	return config
}

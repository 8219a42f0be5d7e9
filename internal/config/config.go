package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting for the service and the scanner.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string

	PairingCodeTTL time.Duration

	// Detection loop settings.
	ScoreThreshold float32
	IOUThreshold   float32
	MaxDetections  int
	FrameInterval  time.Duration
}

// Load reads configuration from environment variables and, when present,
// a config.yaml in the working directory. Environment wins.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8085")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("jwt_secret", "super-secret-key") // move to env in prod
	v.SetDefault("pairing_code_ttl", "15m")
	v.SetDefault("score_threshold", 0.35)
	v.SetDefault("iou_threshold", 0.45)
	v.SetDefault("max_detections", 15)
	v.SetDefault("frame_interval", "66ms")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		ListenAddr:     v.GetString("listen_addr"),
		DatabaseURL:    v.GetString("database_url"),
		RedisAddr:      v.GetString("redis_addr"),
		JWTSecret:      v.GetString("jwt_secret"),
		PairingCodeTTL: v.GetDuration("pairing_code_ttl"),
		ScoreThreshold: float32(v.GetFloat64("score_threshold")),
		IOUThreshold:   float32(v.GetFloat64("iou_threshold")),
		MaxDetections:  v.GetInt("max_detections"),
		FrameInterval:  v.GetDuration("frame_interval"),
	}
	return cfg, nil
}

package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/erievs/FourthTube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Innertube   Innertube   `json:"innertube"`
	Feed        Feed        `json:"feed"`
	OAuth       OAuth       `json:"oauth"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Innertube holds everything that describes the upstream contract in one
// place, so drift on the upstream side means editing config, not code.
type Innertube struct {
	APIBase         string `json:"apiBase"`
	Language        string `json:"language"`
	Region          string `json:"region"`
	ContentLanguage string `json:"contentLanguage"`
	UserAgent       string `json:"userAgent"`
}

// Feed holds the recency-aggregation and fan-out policy knobs.
type Feed struct {
	// CutoffUnit/CutoffMagnitude express "drop anything older than" as the
	// same composite key the aggregator sorts by. Units: second, minute,
	// hour, day, week, month, year.
	CutoffUnit      string `json:"cutoffUnit"`
	CutoffMagnitude int    `json:"cutoffMagnitude"`
	// MaxConcurrentFetches bounds the multi-channel refresh fan-out.
	// Values <= 1 force strictly sequential fetching.
	MaxConcurrentFetches int `json:"maxConcurrentFetches"`
	// CacheTTLSeconds is the Redis TTL for cached feed pages.
	CacheTTLSeconds int `json:"cacheTTLSeconds"`
}

// OAuth holds the upstream account credentials. Tokens are optional: without
// them every fetch runs with the unauthenticated request profile.
type OAuth struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenURL     string `json:"tokenURL"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initDefaults(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

// LoadEnvFromFile reads KEY=VALUE pairs from the given files into the process
// environment. Variables already set in the environment always win; missing
// files, blank lines and #-comments are skipped.
func LoadEnvFromFile(paths ...string) {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			value = strings.Trim(strings.TrimSpace(value), `"'`)
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, value)
			}
		}
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initDefaults(C *Config) {
	if C.Innertube.APIBase == "" {
		C.Innertube.APIBase = "https://www.youtube.com/youtubei/v1"
	}
	if C.Innertube.Language == "" {
		C.Innertube.Language = "en"
	}
	if C.Innertube.Region == "" {
		C.Innertube.Region = "US"
	}
	if C.Innertube.ContentLanguage == "" {
		C.Innertube.ContentLanguage = C.Innertube.Language
	}
	if C.Innertube.UserAgent == "" {
		C.Innertube.UserAgent = "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
	}
	if C.Feed.CutoffUnit == "" {
		C.Feed.CutoffUnit = "month"
	}
	if C.Feed.CutoffMagnitude == 0 {
		C.Feed.CutoffMagnitude = 2
	}
	if C.Feed.MaxConcurrentFetches == 0 {
		C.Feed.MaxConcurrentFetches = 8
	}
	if C.Feed.CacheTTLSeconds == 0 {
		C.Feed.CacheTTLSeconds = 300
	}
}

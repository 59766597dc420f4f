package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	cerr "github.com/AlexanderZaramenskikh/morskoi-boi/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage         string
	Port          int
	LogFile       string
	LogLevel      string
	PsqlUrl       string
	MigrationsDir string
	Seed          int64
}

// Load reads the environment. Outside prod a .env file is loaded first if
// there is one; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	v := viper.New()
	v.SetDefault("stage", StageDev)
	v.SetDefault("port", 9191)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("psql_url", "")
	v.SetDefault("migrations_dir", "file://db/migration")
	v.SetDefault("seed", 0)
	v.AutomaticEnv()

	if v.GetString("stage") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:         v.GetString("stage"),
		Port:          v.GetInt("port"),
		LogFile:       v.GetString("log_file"),
		LogLevel:      v.GetString("log_level"),
		PsqlUrl:       v.GetString("psql_url"),
		MigrationsDir: v.GetString("migrations_dir"),
		Seed:          v.GetInt64("seed"),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}
	return cfg, nil
}

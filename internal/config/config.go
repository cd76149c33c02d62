package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Size         int    `yaml:"size" env:"BOARD_SIZE" env-default:"6"`
	WinLength    int    `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"3"`
	StartingMark string `yaml:"starting-mark" env:"BOARD_STARTING_MARK" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LoadEnv - load configuration from environment variables only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	return config, nil
}

func (that *Board) GetStartingMark() (entity.Mark, error) {
	mark, err := entity.ParseMark(that.StartingMark)
	if err != nil {
		return entity.Empty, fmt.Errorf("starting mark: %w", err)
	}

	return mark, nil
}

// Reachable - reports whether a run of WinLength fits on the board at all.
func (that *Board) Reachable() bool {
	return that.Size > 0 && that.WinLength > 0 && that.WinLength <= that.Size
}

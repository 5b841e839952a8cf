package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env-default:"8080"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"tictactoe.db"`
	Bot               Bot    `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Bot maps the three user-facing difficulty levels to minimax search depths.
// The defaults double per level, so "hard" looks six plies ahead and plays
// the full game tree from any reachable position.
type Bot struct {
	EasyDepth   int `yaml:"easy-depth" env-default:"2"`
	MediumDepth int `yaml:"medium-depth" env-default:"4"`
	HardDepth   int `yaml:"hard-depth" env-default:"6"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Levels returns the level-name-to-depth mapping used by the gameplay layer.
func (that *Bot) Levels() map[string]int {
	return map[string]int{
		"easy":   that.EasyDepth,
		"medium": that.MediumDepth,
		"hard":   that.HardDepth,
	}
}

package providers

import (
	"fmt"
	"moodtracker/internal/structures"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const AppName = "MoodTracker"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.snapshot.saveInterval", 30*time.Second)
	v.SetDefault("storage.redis.prefix", "mood")
	v.SetDefault("history.mergePolicy", "replaceLast")
	v.SetDefault("history.window", 7)
	v.SetDefault("cache.ttl", 5*time.Second)

	_ = v.BindEnv("logger.level", "MOOD_LOG_LEVEL")
	_ = v.BindEnv("storage.driver", "MOOD_STORAGE_DRIVER")
	_ = v.BindEnv("storage.redis.addr", "MOOD_REDIS_ADDR")
	_ = v.BindEnv("storage.sqlite.path", "MOOD_SQLITE_PATH")
	_ = v.BindEnv("history.mergePolicy", "MOOD_MERGE_POLICY")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

package api

import (
	"sync"

	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	StorageConfig
	ServerConfig
	CORSConfig
	LogConfig
}

type StorageConfig struct {
	Backend   string
	FilePath  string
	TableName string
	ItemKey   string
	Endpoint  string
}

type ServerConfig struct {
	Port int
	Mode string
}

type CORSConfig struct {
	AllowOrigins []string
}

type LogConfig struct {
	Level string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:   getStringOrDefault("storage.backend", BackendFile),
			FilePath:  getStringOrDefault("storage.file", "gift_selections_backend.json"),
			TableName: getStringOrDefault("storage.tableName", "GiftSelections"),
			ItemKey:   getStringOrDefault("storage.itemKey", "selections"),
			Endpoint:  getStringOrDefault("storage.endpoint", ""),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 5000),
			Mode: getStringOrDefault("server.mode", "debug"),
		},
		CORSConfig: CORSConfig{
			AllowOrigins: getStringSliceOrDefault("cors.allowOrigins", []string{"*"}),
		},
		LogConfig: LogConfig{
			Level: getStringOrDefault("log.level", "debug"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringSliceOrDefault(name string, def []string) []string {
	if viper.IsSet(name) {
		v := viper.GetStringSlice(name)
		logging.Log.Printf("found '%s' in viper", name)
		if len(v) > 0 {
			return v
		}
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

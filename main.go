// @title Gift Selection API
// @version 1.0
// @description Stores one holiday gift choice per employee and serves aggregate counts
package main

import (
	"errors"
	"strings"

	_ "github.com/alex-pricope/gift-selection-service/docs"

	"github.com/alex-pricope/gift-selection-service/api"
	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logging.Log.Errorf("Failed to read config file: %v", err)
			panic("Failed to read config file: " + err.Error())
		}
		logging.Log.Warn("No config file found, using defaults and environment")
	}

	// Read config
	config := api.ReadConfig()
	logging.SetLevel(config.Level)

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}

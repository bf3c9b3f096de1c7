package config

import (
	"log"
	"path/filepath"
	"strings"

	"bizbuddy/models"

	"github.com/spf13/viper"
)

// Business is the immutable service catalog, loaded once before the first
// request. Nothing mutates it afterwards.
var Business models.BusinessConfig

// LoadBusinessConfig reads the catalog file named by BUSINESS_CONFIG_FILE
// (yaml or json) and validates it. Call after LoadConfig.
func LoadBusinessConfig() {
	path := AppConfig.BusinessConfigFile

	v := viper.New()
	v.SetConfigFile(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext != "" {
		v.SetConfigType(ext)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read business config %q: %v", path, err)
	}
	if err := v.Unmarshal(&Business); err != nil {
		log.Fatalf("Failed to parse business config %q: %v", path, err)
	}
	if err := Business.Validate(); err != nil {
		log.Fatalf("Invalid business config %q: %v", path, err)
	}
}

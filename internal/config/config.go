package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	TrailingSlashAlways = "always"
	TrailingSlashNever  = "never"
)

type Config struct {
	OutputDir     string `mapstructure:"outputDir" validate:"required"`
	ContentDir    string `mapstructure:"contentDir" validate:"required"`
	LayoutsDir    string `mapstructure:"layoutsDir" validate:"required"`
	StaticDir     string `mapstructure:"staticDir"`
	SiteFile      string `mapstructure:"siteFile"`
	SiteURL       string `mapstructure:"siteURL" validate:"omitempty,url"`
	BasePath      string `mapstructure:"basePath"`
	TrailingSlash string `mapstructure:"trailingSlash" validate:"oneof=always never"`
	LogLevel      string `mapstructure:"logLevel" validate:"oneof=debug info warn error"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Links returns the link builder for this configuration. siteURL is used when
// the configuration does not name one.
func (c Config) Links(siteURL string) Links {
	if c.SiteURL != "" {
		siteURL = c.SiteURL
	}
	return NewLinks(siteURL, c.BasePath, c.TrailingSlash)
}

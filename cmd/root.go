package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/build"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/config"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/data"
)

var cfgFile string
var appConfig config.Config
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Builds the portfolio and blog into a static site",
	Long: `portfolio renders the project table, the resume and the Markdown blog
collection through the layouts directory into a static website, together with
an RSS feed and a sitemap.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("outputDir", "dist")
	v.SetDefault("contentDir", "content/blog")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("siteFile", "site.yaml")
	v.SetDefault("siteURL", "")
	v.SetDefault("basePath", "/")
	v.SetDefault("trailingSlash", config.TrailingSlashAlways)
	v.SetDefault("logLevel", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configErr := v.ReadInConfig()
	if configErr != nil {
		if _, ok := configErr.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", configErr)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, configErr)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logger = newLogger(appConfig.LogLevel)
	slog.SetDefault(logger)
	if configErr != nil {
		logger.Info("no config file found, using defaults and environment variables")
	} else {
		logger.Info("using config file", "file", v.ConfigFileUsed())
	}

	loaded, err := data.OverlaySite(appConfig.SiteFile)
	if err != nil {
		return err
	}
	if loaded {
		logger.Info("using site file", "file", appConfig.SiteFile)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func currentSite() build.Site {
	return build.Site{
		Config:   data.Site,
		Projects: data.Projects,
		Resume:   data.ResumeData,
	}
}

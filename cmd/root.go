/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EO-DataHub/eodhp-user-listing/internal/appconfig"
	awsclient "github.com/EO-DataHub/eodhp-user-listing/internal/aws"
	"github.com/EO-DataHub/eodhp-user-listing/internal/records"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int
	appCfg     *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "user-listing",
	Short: "User Listing",
	Long:  `User Listing serves the users held in a JSON data resource as a web page and a JSON API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the config file (built-in defaults are used when empty)")
}

// commonSetUp sets up logging and loads the config
func commonSetUp() {
	setLogging(logLevel)

	if configPath == "" {
		appCfg = appconfig.DefaultConfig()
		return
	}

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// initializeAccessor builds the records accessor for the configured source.
func initializeAccessor(ctx context.Context, dataCfg appconfig.DataConfig) (*records.Accessor, error) {
	switch dataCfg.Source {
	case appconfig.SourceS3:
		awsCfg, err := awsclient.LoadAWSConfig(ctx, dataCfg.S3.Region)
		if err != nil {
			return nil, err
		}
		log.Info().Str("bucket", dataCfg.S3.Bucket).Str("key", dataCfg.S3.Key).
			Msg("Reading users from S3")
		return records.NewAccessor(records.S3Source{
			Client: awsclient.NewS3Client(awsCfg),
			Bucket: dataCfg.S3.Bucket,
			Key:    dataCfg.S3.Key,
		}), nil
	default:
		log.Info().Str("path", dataCfg.Path).Msg("Reading users from file")
		return records.NewAccessor(records.FileSource{Path: dataCfg.Path}), nil
	}
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xposedornot "github.com/xposedornot/client-go"
)

// Injected at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	cfg     *Config
	logger  zerolog.Logger
	client  *xposedornot.Client

	// Persistent flags
	baseURL    string
	apiKey     string
	timeout    time.Duration
	retries    int
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "xon",
	Short: "Query the XposedOrNot data breach database",
	Long: `xon checks email addresses, domains, and passwords against the
XposedOrNot breach database. Password checks are anonymous: only the
first ten characters of a Keccak-512 digest ever leave the machine.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./xon.yaml)")
	pf.StringVar(&baseURL, "base-url", "", "API base URL")
	pf.StringVar(&apiKey, "api-key", "", "API key for authenticated plans")
	pf.DurationVar(&timeout, "timeout", 0, "whole-request timeout, retries included (default 30s)")
	pf.IntVar(&retries, "retries", 0, "request attempts per call, 0 for a single attempt (default 3)")
	pf.BoolVar(&jsonOutput, "json", false, "print results as JSON")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default info)")

	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(breachesCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(passwordCmd)
}

// initializeApp loads configuration and builds the shared API client.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	applyFlagOverrides(cmd)

	logger = setupLogger(cfg.Logging)

	opts := []xposedornot.Option{
		xposedornot.WithTimeout(cfg.API.Timeout),
		xposedornot.WithRetries(cfg.API.Retries),
		xposedornot.WithLogger(logger),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, xposedornot.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.PasswordBaseURL != "" {
		opts = append(opts, xposedornot.WithPasswordBaseURL(cfg.API.PasswordBaseURL))
	}
	if cfg.API.Key != "" {
		opts = append(opts, xposedornot.WithAPIKey(cfg.API.Key))
	}

	client, err = xposedornot.New(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	return nil
}

// applyFlagOverrides lets command-line flags win over config file and
// environment values. Changed() distinguishes an explicit zero from an
// unset flag, so --retries 0 still means a single attempt.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}
	if flags.Changed("api-key") {
		cfg.API.Key = apiKey
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = timeout
	}
	if flags.Changed("retries") {
		cfg.API.Retries = retries
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

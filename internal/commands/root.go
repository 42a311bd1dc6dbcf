// internal/commands/root.go
package localingo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/localingo/internal/appconfig"
	"github.com/mwiater/localingo/internal/logging"
	"github.com/mwiater/localingo/internal/tui"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"

	// startGUI is swapped in tests.
	startGUI = tui.StartGUI
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "localingo",
	Short: "localingo: proofread, translate and rephrase English with a local Ollama model",
	Long: `localingo sends your English text through three local LLM stages:
proofreading, Japanese translation, and three natural English alternatives.
Run without a subcommand to open the terminal UI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := ensureConfigLoaded()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if loaded {
			cfg.ConfigPath = viper.ConfigFileUsed()
		}
		if err := appconfig.ApplyParameterTemplate(&cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if err := appconfig.Validate(cfg); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.LogEvent("[CONFIG] host=%s model=%s file=%q", cfg.HostURL(), cfg.ModelName(), cfg.ConfigPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		return startGUI(ctx, GetConfig(), cancel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Defaults()
	viper.SetDefault("host", defaults.Host)
	viper.SetDefault("model", defaults.Model)
	viper.SetDefault("logFile", defaults.LogFile)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (JSON or YAML)")
	rootCmd.PersistentFlags().Bool("debug", false, "show generation metrics in the UI")
	rootCmd.PersistentFlags().String("host", defaults.Host, "Ollama base URL")
	rootCmd.PersistentFlags().StringP("model", "m", defaults.Model, "Ollama model used for every stage")
	rootCmd.PersistentFlags().String("logFile", defaults.LogFile, "path to the log file")
	rootCmd.PersistentFlags().String("parameterTemplate", "", "sampling preset: precise, natural or creative")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
	_ = viper.BindPFlag("parameterTemplate", rootCmd.PersistentFlags().Lookup("parameterTemplate"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("LOCALINGO")
	viper.AutomaticEnv()
}

// ensureConfigLoaded reads the config file. A missing file at the default
// path is fine; a missing file the user named explicitly is an error.
func ensureConfigLoaded() (bool, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		if errors.Is(err, fs.ErrNotExist) && cfgFile == appconfig.DefaultConfigPath {
			return false, nil
		}
		return false, fmt.Errorf("failed to load config: %w", err)
	}
	return true, nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

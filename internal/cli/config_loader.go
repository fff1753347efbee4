// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"greeter/internal/config"
	"greeter/internal/logging"
	"greeter/internal/shared"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "config.toml"
	envPrefix         = "GREETER"
)

var envFileNames = []string{".env.local", ".env"}

// initializeConfig builds the effective configuration.
// Precedence: flags > environment > config file > defaults.
func initializeConfig(cmd *cobra.Command, global *GlobalOptions, serve *ServeOptions) (*config.Config, error) {
	loadEnvFiles(global.CfgFilePath)
	env := newEnv()

	// 1. Check environment variable for config path first
	cfgFile := global.CfgFilePath
	if envPath := env.GetString("config_path"); envPath != "" && (cfgFile == "" || cfgFile == defaultConfigPath) {
		cfgFile = envPath
	}
	if cfgFile == "" {
		cfgFile = defaultConfigPath
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return nil, fmt.Errorf("%w: failed to load configuration from %s: %w", shared.ErrStartup, cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	if err := applyEnvOverrides(cfg, env); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrStartup, err)
	}
	applyFlagOverrides(cfg, cmd, global, serve)
	cfg.ApplyDefaults()

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return nil, fmt.Errorf("%w: configuration error: %w", shared.ErrStartup, err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level, cfg.Logging.Format)
	logging.Log.Debugf("Configuration loaded (file: %s)", cfgFile)

	return cfg, nil
}

// newEnv binds the supported environment variables.
// PORT is honoured as a fallback for platforms that assign the port.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	_ = v.BindEnv("config_path")
	_ = v.BindEnv("host")
	_ = v.BindEnv("port", envPrefix+"_PORT", "PORT")
	_ = v.BindEnv("log_level")
	_ = v.BindEnv("log_format")
	_ = v.BindEnv("access_log")
	_ = v.BindEnv("message")
	return v
}

func applyEnvOverrides(c *config.Config, env *viper.Viper) error {
	if v := env.GetString("host"); v != "" {
		c.Server.Host = v
	}
	if v := env.GetString("port"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid port %q in environment: %w", v, shared.ErrInvalidPort)
		}
		c.Server.Port = p
	}
	if v := env.GetString("log_level"); v != "" {
		c.Logging.Level = v
	}
	if v := env.GetString("log_format"); v != "" {
		c.Logging.Format = v
	}
	if v := env.GetString("access_log"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid access log %q in environment: %w", v, shared.ErrInvalidAccessLog)
		}
		c.Logging.AccessLog = &b
	}
	if v := env.GetString("message"); v != "" {
		c.Greeting.Message = v
	}
	return nil
}

func applyFlagOverrides(c *config.Config, cmd *cobra.Command, global *GlobalOptions, serve *ServeOptions) {
	if global.LogLevel != "" {
		c.Logging.Level = global.LogLevel
	}
	if serve == nil {
		return
	}
	if serve.Host != "" {
		c.Server.Host = serve.Host
	}
	if serve.Port != 0 {
		c.Server.Port = serve.Port
	}
	if serve.Message != "" {
		c.Greeting.Message = serve.Message
	}
	// Check if flag was explicitly set
	if cmd != nil && cmd.Flags().Changed("access-log") {
		accessLog := serve.AccessLog
		c.Logging.AccessLog = &accessLog
	}
}

// loadEnvFiles loads .env files next to the config file and in the working
// directory. Variables already present in the environment are not overwritten.
func loadEnvFiles(cfgPath string) {
	var dirs []string
	if cfgPath != "" {
		dirs = append(dirs, filepath.Dir(cfgPath))
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	seen := make(map[string]struct{})
	var files []string
	for _, dir := range dirs {
		for _, name := range envFileNames {
			candidate, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			if _, err := os.Stat(candidate); err == nil {
				files = append(files, candidate)
			}
		}
	}
	if len(files) == 0 {
		return
	}
	if err := godotenv.Load(files...); err != nil {
		logging.Log.Warnf("Could not load env files %v: %v", files, err)
	}
}

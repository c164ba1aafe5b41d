package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/lanclip/internal/engine"
	"go.klb.dev/lanclip/internal/logging"
	"go.klb.dev/lanclip/internal/message"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and LANCLIP_* env var prefix. Dashes in keys map
// to underscores in env names (peer-role reads LANCLIP_PEER_ROLE).
//
// Precedence (lowest → highest): defaults → config file → LANCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("lanclip")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/lanclip/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/lanclip", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("LANCLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	if cmd.Flags().Lookup("role") != nil {
		return roleDefaults(v)
	}
	return nil
}

// roleDefaults fills the settings whose default follows --role: the beacon
// type to accept and whether clipboard changes are pushed. A desktop always
// pushes unless told otherwise; a phone waits for "lanclip autosync on".
// Explicit flags, env vars and config keys still win.
func roleDefaults(v *viper.Viper) error {
	switch role := v.GetString("role"); role {
	case engine.RoleMobile:
		v.SetDefault("peer-role", message.RoleDesktop)
		v.SetDefault("autosync", false)
	case engine.RoleDesktop:
		v.SetDefault("peer-role", message.RoleMobile)
		v.SetDefault("autosync", true)
	default:
		return fmt.Errorf("unknown role %q (want %s or %s)", role, engine.RoleMobile, engine.RoleDesktop)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info for service, debug for interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := v.GetBool("no-background") || logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString("log-format"), v.GetString("log-level"))
}

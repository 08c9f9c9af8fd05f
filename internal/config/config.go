package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigDir  = "/etc/openvpn"
	DefaultUnitPrefix = "openvpn@"
	DefaultSudo       = "sudo"
	DefaultSystemctl  = "systemctl"

	EnvPrefix = "switch_openvpn"
)

const (
	KeyConfigDir  = "config-dir"
	KeyUnitPrefix = "unit-prefix"
	KeySudo       = "sudo"
	KeySystemctl  = "systemctl"
	KeyDryRun     = "dry-run"
	KeyDebug      = "debug"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// ConfigDir holds one <profile>.conf per OpenVPN connection.
	ConfigDir  string
	UnitPrefix string
	// Sudo is the privilege escalation command used for stop and start.
	Sudo      string
	Systemctl string
	DryRun    bool
	Debug     bool
}

// AddFlags registers every setting on flags with its default.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyConfigDir, DefaultConfigDir, "Directory containing OpenVPN <profile>.conf files")
	flags.String(KeyUnitPrefix, DefaultUnitPrefix, "Prefix joined with the profile name to form the systemd unit")
	flags.String(KeySudo, DefaultSudo, "Command used to elevate stop and start, empty to run systemctl directly")
	flags.String(KeySystemctl, DefaultSystemctl, "Path to the systemctl binary")
	flags.Bool(KeyDryRun, false, "Print the units that would be stopped and started without touching them")
	flags.Bool(KeyDebug, false, "Enable debug output")
}

// NewViper returns a viper instance reading SWITCH_OPENVPN_* environment
// variables, e.g. SWITCH_OPENVPN_CONFIG_DIR.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetDefault(KeyConfigDir, DefaultConfigDir)
	v.SetDefault(KeyUnitPrefix, DefaultUnitPrefix)
	v.SetDefault(KeySudo, DefaultSudo)
	v.SetDefault(KeySystemctl, DefaultSystemctl)

	return v
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ConfigDir:  v.GetString(KeyConfigDir),
		UnitPrefix: v.GetString(KeyUnitPrefix),
		Sudo:       v.GetString(KeySudo),
		Systemctl:  v.GetString(KeySystemctl),
		DryRun:     v.GetBool(KeyDryRun),
		Debug:      v.GetBool(KeyDebug),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ConfigDir) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyConfigDir)
	}
	if strings.TrimSpace(c.UnitPrefix) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyUnitPrefix)
	}
	if strings.TrimSpace(c.Systemctl) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeySystemctl)
	}
	return nil
}

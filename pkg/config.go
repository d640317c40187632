package pkg

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
	ViewerBinary      = "tetroterm"
	ServerLogPath     = "./server.log"
)

// Config holds the SSH host settings
type Config struct {
	SshPort      string        `mapstructure:"ssh_port"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	HostKeyFile  string        `mapstructure:"host_key_file"`
	ViewerBinary string        `mapstructure:"viewer_binary"`
	ViewerTheme  string        `mapstructure:"viewer_theme"`
	LogPath      string        `mapstructure:"log_path"`
}

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetDefault("ssh_port", SshPort)
	vp.SetDefault("idle_timeout", ServerIdleTimeout)
	vp.SetDefault("host_key_file", "")
	vp.SetDefault("viewer_binary", ViewerBinary)
	vp.SetDefault("viewer_theme", "basic")
	vp.SetDefault("log_path", ServerLogPath)

	vp.SetEnvPrefix("tetroterm")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	return vp
}

// LoadConfig reads the YAML file at path on top of the defaults. An empty
// path yields the defaults, still subject to TETROTERM_* environment
// overrides.
func LoadConfig(path string) (Config, error) {
	vp := newViper()

	if path != "" {
		vp.SetConfigFile(filepath.Clean(path))
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

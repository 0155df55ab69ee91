package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/makeca/make-ca/internal/adapters/outbound/logging"
)

const (
	envPrefix  = "MAKE_CA"
	keyVerbose = "verbose"
	keyDir     = "dir"
)

// newSettings returns a viper instance reading MAKE_CA_* environment
// variables. Flags are bound by the root command.
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// mustBindPFlag binds flag to key. A nil flag is a wiring bug.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding --%s: %v", key, err))
	}
}

// workDir returns the absolute working directory: --dir, MAKE_CA_DIR or
// the process working directory.
func workDir(v *viper.Viper) (string, error) {
	dir := v.GetString(keyDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

func newLogger(v *viper.Viper, w io.Writer) *logrus.Logger {
	return logging.New(w, v.GetBool(keyVerbose))
}

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load reads the config file if one exists. A missing file is not an error:
// the tool can run entirely from S3_ACCESS_KEY_ID / S3_SECRET_ACCESS_KEY
// environment variables.
func Load(checkPerms bool) (*viper.Viper, error) {
	path := ResolveConfigPath()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	bindEnv(v)

	if checkPerms {
		if err := checkConfigPermissions(path); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return v, nil
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("s3.endpoint", "S3_ENDPOINT_URL")
	_ = v.BindEnv("s3.region", "S3_REGION")
	_ = v.BindEnv("s3.access_key", "S3_ACCESS_KEY_ID")
	_ = v.BindEnv("s3.secret_key", "S3_SECRET_ACCESS_KEY")
}

func checkConfigPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	mode := info.Mode().Perm()

	if mode&0077 != 0 {
		return fmt.Errorf("config file %s has overly permissive mode %s (recommended: 0600)", path, mode)
	}
	return nil
}

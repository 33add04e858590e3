// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/nftext/utils/constants"
)

// BuildViper returns the viper environment built from the config file, the
// environment and [args]. Flags take precedence over
// environment variables, which take precedence over the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.SetEnvPrefix(constants.EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(getExpandedString(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

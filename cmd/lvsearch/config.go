package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "LVSEARCH"

	// Config keys, shared by flags, env and the config file.
	cfgKeyLogLevel    = "log-level"
	cfgKeyStart       = "start"
	cfgKeyGoal        = "goal"
	cfgKeyDepth       = "depth"
	cfgKeyVerify      = "verify"
	cfgKeyMaxVisited  = "max-visited"
	cfgKeyVertices    = "vertices"
	cfgKeyProbability = "p"
	cfgKeySeed        = "seed"
	cfgKeyFrom        = "from"
	cfgKeyTo          = "to"
	cfgKeyUndirected  = "undirected"
	cfgKeyLoops       = "loops"
	cfgKeyIterations  = "iterations"
	cfgKeyWorkers     = "workers"
)

// loadConfig builds a viper instance for cmd. Precedence:
// flag > LVSEARCH_* env > config file > flag default.
func loadConfig(cmd *cobra.Command, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

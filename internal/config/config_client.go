// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the command-line API client.
type ClientConfig struct {
	// Adapter contains the server address, request timeout and token.
	Adapter Adapter
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds the client configuration from the .env file, the
// ADAPTER_* environment variables and the global flags found in args.
//
// Global flags must precede the command; the unparsed remainder of args
// (the command and its own flags) is returned.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().withDotEnv().withEnv()
	base, err := b.merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	clientCfg := &ClientConfig{
		Adapter:  base.Adapter,
		LogLevel: base.App.LogLevel,
	}
	if err := mergo.Merge(clientCfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging client flags: %w", err)
	}

	return clientCfg, rest, clientCfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	var cfg ClientConfig

	fs := flag.NewFlagSet("agromatch-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server base URL (e.g. http://localhost:8080)")
	fs.StringVar(&cfg.Adapter.Token, "t", "", "Bearer token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", time.Duration(0), "Request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, fs.Args(), nil
}

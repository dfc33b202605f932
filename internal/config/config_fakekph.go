package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
)

const defaultFakeServerAddress = "localhost:19455"

// FakeServer configures the in-process KeePassHTTP service used for local
// development and tests.
type FakeServer struct {
	// HTTPAddress is the listen address.
	// Env: FAKEKPH_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// EntriesFile is an optional JSON file with the credential entries to
	// serve, keyed by URL.
	// Env: FAKEKPH_ENTRIES_FILE
	EntriesFile string `env:"ENTRIES_FILE"`

	// DeclineAssociate makes every associate request fail.
	// Env: FAKEKPH_DECLINE_ASSOCIATE
	DeclineAssociate bool `env:"DECLINE_ASSOCIATE"`

	// LockedMessage, when set, makes get-logins fail with this text as if
	// the database were locked.
	// Env: FAKEKPH_LOCKED_MESSAGE
	LockedMessage string `env:"LOCKED_MESSAGE"`
}

type fakeServerEnv struct {
	FakeServer FakeServer `envPrefix:"FAKEKPH_"`
}

// GetFakeServerConfig merges defaults, environment variables and
// command-line flags, later sources overriding earlier ones.
func GetFakeServerConfig() (*FakeServer, error) {
	return getFakeServerConfig(flag.CommandLine, os.Args[1:])
}

func getFakeServerConfig(fs *flag.FlagSet, args []string) (*FakeServer, error) {
	cfg := &FakeServer{HTTPAddress: defaultFakeServerAddress}

	envCfg := new(fakeServerEnv)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseFakeServerFlags(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error getting flag configs: %w", err)
	}

	for _, src := range []*FakeServer{&envCfg.FakeServer, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseFakeServerFlags(fs *flag.FlagSet, args []string) (*FakeServer, error) {
	cfg := new(FakeServer)

	fs.StringVar(&cfg.HTTPAddress, "a", "", "listen address")
	fs.StringVar(&cfg.EntriesFile, "entries", "", "JSON file with entries to serve")
	fs.BoolVar(&cfg.DeclineAssociate, "decline", false, "decline every associate request")
	fs.StringVar(&cfg.LockedMessage, "locked", "", "fail get-logins with this message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *FakeServer) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}

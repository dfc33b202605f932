package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a KeePassHTTP address (URL or host:port)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-show print passwords in clear text
//	-copy copy the first password to the clipboard
//
// Positional arguments are returned in [StructuredConfig.Args].
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var address string
	var requestTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string
	var showPasswords bool
	var copyPassword bool

	fs.StringVar(&address, "a", "", "KeePassHTTP address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showPasswords, "show", false, "Print passwords in clear text")
	fs.BoolVar(&copyPassword, "copy", false, "Copy the first password to the clipboard")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ShowPasswords: showPasswords,
			CopyPassword:  copyPassword,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

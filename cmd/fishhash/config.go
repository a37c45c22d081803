// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for the fishhash tool.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Bench      uint32 `long:"bench" description:"Measure hash throughput over the given number of nonce-suffixed hashes"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	Full       bool   `long:"full" description:"Allocate the full ~4.5 GiB dataset and materialize items lazily while hashing"`
	Hex        bool   `long:"hex" description:"Interpret header arguments as hexadecimal instead of ASCII"`
	LogFile    string `long:"logfile" description:"Write log output to the given rotated file in addition to stdout"`
	Prebuild   bool   `long:"prebuild" description:"Eagerly materialize the full dataset before hashing (implies --full)"`
	Threads    uint32 `long:"threads" description:"Number of worker threads used to prebuild the dataset" default:"8"`
}

// loadConfig initializes and parses the config using command line options.
// It returns the parsed configuration along with the remaining arguments,
// which are the headers to hash.
func loadConfig() (*config, []string, error) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] HEADER..."
	remainingArgs, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// The error was already printed by the flags package.
		return nil, nil, err
	}

	reportErr := func(err error) error {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if !validLogLevel(cfg.DebugLevel) {
		return nil, nil, reportErr(fmt.Errorf("invalid debuglevel %q",
			cfg.DebugLevel))
	}
	if cfg.Threads == 0 {
		return nil, nil, reportErr(errors.New("--threads must be at least 1"))
	}
	if cfg.Prebuild {
		cfg.Full = true
	}
	if len(remainingArgs) == 0 && cfg.Bench == 0 {
		return nil, nil, reportErr(errors.New("no headers to hash; provide " +
			"one or more HEADER arguments or --bench"))
	}

	return &cfg, remainingArgs, nil
}

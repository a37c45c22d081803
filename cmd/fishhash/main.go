// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// fishhash is a small tool that computes FishHash digests of block headers.
//
// It builds a hashing context, hashes each header given on the command line,
// and prints the digests as uppercase hex.  Verifier-style light mode is the
// default; --full and --prebuild exercise the producer configurations.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"vigil.network/fishhash"
)

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}

// realMain drives the tool so that deferred cleanup runs before the exit code
// is set.
func realMain() error {
	cfg, headerArgs, err := loadConfig()
	if err != nil {
		// Parse and validation failures were already reported.
		return err
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	setLogLevel(cfg.DebugLevel)

	mode := "light"
	if cfg.Full {
		mode = "full"
	}
	log.Infof("Building %s context", mode)
	start := time.Now()
	ctx := fishhash.NewContext(cfg.Full)
	log.Infof("Context ready in %v", time.Since(start))

	if cfg.Prebuild {
		ctx.Prebuild(cfg.Threads)
	}

	for _, arg := range headerArgs {
		header := []byte(arg)
		if cfg.Hex {
			header, err = hex.DecodeString(arg)
			if err != nil {
				err = fmt.Errorf("invalid hex header %q: %w", arg, err)
				fmt.Fprintln(os.Stderr, err)
				return err
			}
		}
		digest := ctx.Sum(header)
		fmt.Printf("%X  %s\n", digest, arg)
	}

	if cfg.Bench > 0 {
		runBench(ctx, cfg.Bench)
	}
	return nil
}

// runBench hashes numHashes nonce-suffixed headers and reports the achieved
// rate.
func runBench(ctx *fishhash.Context, numHashes uint32) {
	header := make([]byte, 48)
	copy(header, "fishhash benchmark header")

	log.Infof("Benchmarking %d hashes", numHashes)
	start := time.Now()
	for nonce := uint32(0); nonce < numHashes; nonce++ {
		binary.LittleEndian.PutUint32(header[40:], nonce)
		ctx.Sum(header)
	}
	elapsed := time.Since(start)
	log.Infof("%d hashes in %v (%.2f H/s)", numHashes, elapsed,
		float64(numHashes)/elapsed.Seconds())
}

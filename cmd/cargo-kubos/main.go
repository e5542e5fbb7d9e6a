// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The cargo-kubos command runs a Cargo command with a Kubos target
// attached. It is used when building, running or testing crates that
// either contain a yotta module or depend on one.
//
// Usage:
//
//	cargo kubos -c <COMMAND> [-t <TARGET>] [-v] [-- <CARGO ARGS>...]
//
// Examples:
//
//	cargo kubos -c build -t kubos-linux-beaglebone-gcc -- --release
//	cargo kubos -c test -- -vv
//
// The Kubos target is translated to a Rust target triplet and passed to
// cargo as --target. If the Cargo configuration ($CARGO_HOME/config)
// names a linker for that triplet, it is also used as the C and C++
// compiler for build scripts. The exit status is cargo's.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kubos/cargo-kubos/internal/delegate"
	"github.com/kubos/cargo-kubos/internal/invoke"
	"github.com/kubos/cargo-kubos/internal/kubostarget"
)

const (
	exitUnsupportedTarget = 1
	exitUsage             = 2
)

type options struct {
	command string
	target  string
	help    bool
	verbose bool
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("cargo-kubos", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	for _, name := range []string{"c", "command"} {
		fs.StringVar(&o.command, name, "", "cargo command to run")
	}
	for _, name := range []string{"t", "target"} {
		fs.StringVar(&o.target, name, kubostarget.Default, "sets (Kubos) target")
	}
	for _, name := range []string{"h", "help"} {
		fs.BoolVar(&o.help, name, false, "displays help")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&o.verbose, name, false, "print the cargo command before running it")
	}
	return fs
}

// parseArgs parses flags from args, allowing them to be interleaved
// with free arguments. Everything after a "--" is free.
// It returns the free arguments in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	free := []string{}
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return free, nil
		}
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(free, rest...), nil
		}
		free = append(free, rest[0])
		args = rest[1:]
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `cargo-kubos is a helper utility for running Cargo commands with a Kubos target attached.
It is used when building/running/testing crates which either contain a yotta module or depend on one.

Usage:
	cargo kubos -c [cargo command] [options] -- [cargo options]
	cargo kubos -c build -t x86-linux-native -- -vv

Options:
    -c, --command COMMAND
                        cargo command to run (required)
    -t, --target NAME   sets (Kubos) target (default %s)
    -h, --help          displays help
    -v, --verbose       prints the cargo command before running it

Targets:
    %s
`, kubostarget.Default, strings.Join(kubostarget.Names(), "\n    "))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr))
}

// run runs cargo-kubos with the given arguments and environment and
// returns the process exit code.
func run(ctx context.Context, args, env []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "cargo-kubos: ", 0)

	var o options
	free, err := parseArgs(newFlagSet(&o), args)
	if err != nil {
		fmt.Fprintf(stderr, "Error - %v\n\n", err)
		usage(stderr)
		return exitUsage
	}
	if o.help {
		usage(stdout)
		return 0
	}
	if o.command == "" {
		fmt.Fprintf(stderr, "Error - required option 'c' missing\n\n")
		usage(stderr)
		return exitUsage
	}

	inv, err := delegate.Build(delegate.Request{
		Target:  o.target,
		Command: o.command,
		Args:    delegate.StripAlias(free, delegate.Alias),
	}, env)
	if err != nil {
		logger.Print(err)
		var ute *kubostarget.UnsupportedTargetError
		if errors.As(err, &ute) {
			return exitUnsupportedTarget
		}
		return exitUsage
	}
	inv.Stdin, inv.Stdout, inv.Stderr = stdin, stdout, stderr

	if o.verbose {
		if linker, ok := inv.Getenv("CC"); ok {
			logger.Printf("using linker %s from Cargo config", linker)
		}
		logger.Printf("running %v", inv)
	}
	code, err := invoke.Run(ctx, inv, env)
	if err != nil {
		logger.Printf("running %s: %v", inv.Path, err)
	}
	return code
}

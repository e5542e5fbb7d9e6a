// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package delegate turns a cargo-kubos request into the cargo command
// that carries it out.
package delegate

import (
	"errors"

	"github.com/kubos/cargo-kubos/internal/cargoconfig"
	"github.com/kubos/cargo-kubos/internal/envutil"
	"github.com/kubos/cargo-kubos/internal/invoke"
	"github.com/kubos/cargo-kubos/internal/kubostarget"
)

// Alias is the subcommand name cargo passes as the first argument when
// the wrapper runs as "cargo kubos".
const Alias = "kubos"

// TargetEnv is set in the child's environment to the Kubos target name.
const TargetEnv = "CARGO_KUBOS_TARGET"

// A Request is a single cargo-kubos run.
type Request struct {
	Target  string   // Kubos target name, e.g. kubostarget.Default
	Command string   // cargo subcommand, e.g. "build"
	Args    []string // passed to cargo after the target flag
}

// Build returns the cargo invocation for req. The environment env is
// consulted for CARGO, CARGO_HOME and HOME but not modified.
//
// If the Cargo configuration names a linker for the resolved triplet,
// the invocation sets CC and CXX to it and allows pkg-config to be used
// while cross-compiling.
func Build(req Request, env []string) (*invoke.Invocation, error) {
	if req.Command == "" {
		return nil, errors.New("no cargo command given")
	}
	triplet, err := kubostarget.Resolve(req.Target)
	if err != nil {
		return nil, err
	}

	cargo := envutil.Get(env, "CARGO")
	if cargo == "" {
		cargo = "cargo"
	}
	args := make([]string, 0, 3+len(req.Args))
	args = append(args, req.Command, "--target", triplet)
	args = append(args, req.Args...)

	inv := &invoke.Invocation{Path: cargo, Args: args}
	inv.Setenv(TargetEnv, req.Target)
	if linker, ok := cargoconfig.Linker(env, triplet); ok {
		inv.Setenv("CC", linker)
		inv.Setenv("CXX", linker)
		inv.Setenv("PKG_CONFIG_ALLOW_CROSS", "1")
	}
	return inv, nil
}

// StripAlias returns args without any element equal to alias.
// The remaining elements keep their order.
//
// Any pass-through argument that happens to equal alias is dropped too;
// cargo gives no way to tell the two apart.
func StripAlias(args []string, alias string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != alias {
			out = append(out, a)
		}
	}
	return out
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invoke describes and runs a single child process whose
// environment is carried explicitly rather than set on the parent.
package invoke

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/kubos/cargo-kubos/internal/envutil"
)

// An Invocation describes a command to run.
type Invocation struct {
	Path string   // program name or path, looked up in $PATH if it has no separator
	Args []string // arguments, not including the program name
	Env  []string // "key=value" pairs layered over the base environment

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Setenv adds key=value to inv.Env, replacing any earlier value of key.
func (inv *Invocation) Setenv(key, value string) {
	inv.Env = envutil.Merge(inv.Env, key+"="+value)
}

// Getenv returns the value inv.Env assigns to key, if any.
func (inv *Invocation) Getenv(key string) (string, bool) {
	return envutil.Lookup(inv.Env, key)
}

// Command returns an exec.Cmd for inv. The child's environment is base
// overlaid with inv.Env.
func (inv *Invocation) Command(ctx context.Context, base []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Env = envutil.Merge(base, inv.Env...)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	return cmd
}

// String returns inv as a shell command line, prefixed by the
// environment assignments it adds.
func (inv *Invocation) String() string {
	var b strings.Builder
	for _, kv := range inv.Env {
		k, v := envutil.Split(kv)
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(shellquote.Join(v))
		b.WriteString(" ")
	}
	b.WriteString(shellquote.Join(append([]string{inv.Path}, inv.Args...)...))
	return b.String()
}

// Run runs inv with base as its starting environment and waits for it
// to exit. It returns the exit code the parent should use.
//
// The returned error is non-nil only if the child could not be started
// or its I/O failed; the child exiting unsuccessfully is reported
// through the code alone.
func Run(ctx context.Context, inv *Invocation, base []string) (code int, err error) {
	cmd := inv.Command(ctx, base)
	if err := cmd.Start(); err != nil {
		return 1, err
	}
	err = cmd.Wait()
	var ee *exec.ExitError
	if err != nil && !errors.As(err, &ee) {
		return 1, err
	}
	return ExitCode(err), nil
}

// ExitCode maps the error from exec.Cmd.Wait or Run to a process exit
// code: 0 for success, the child's own code if it exited, and 1 for
// anything else, including termination by a signal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}

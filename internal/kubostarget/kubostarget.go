// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kubostarget maps Kubos target names to the compiler target
// triplets that Cargo and Clang understand.
package kubostarget

import (
	"fmt"
	"strings"
)

// Default is the target used when none is given on the command line.
const Default = "x86-linux-native"

// Target is a Kubos build target.
type Target struct {
	Name    string // Kubos name, e.g. "kubos-linux-isis-gcc"
	Triplet string // arch-vendor-os-abi, e.g. "armv5te-unknown-linux-gnueabi"
}

// targets lists every supported target, in the order they are reported
// to users.
var targets = []*Target{
	{Name: Default, Triplet: "x86_64-unknown-linux-gnu"},
	{Name: "kubos-linux-beaglebone-gcc", Triplet: "arm-unknown-linux-gnueabihf"},
	{Name: "kubos-linux-pumpkin-mbm2-gcc", Triplet: "arm-unknown-linux-gnueabihf"},
	{Name: "kubos-linux-isis-gcc", Triplet: "armv5te-unknown-linux-gnueabi"},
}

var byName = map[string]*Target{}

func init() {
	for _, t := range targets {
		if _, dup := byName[t.Name]; dup {
			panic(fmt.Sprintf("duplicate target %q", t.Name))
		}
		if strings.Count(t.Triplet, "-") < 2 {
			panic(fmt.Sprintf("target %q has malformed triplet %q", t.Name, t.Triplet))
		}
		byName[t.Name] = t
	}
	if byName[Default] == nil {
		panic("default target " + Default + " is not in the table")
	}
}

// UnsupportedTargetError is returned by Resolve for a name that is not
// in the target table.
type UnsupportedTargetError struct {
	Name string
}

func (e *UnsupportedTargetError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "target %q not supported for cargo/yotta builds\nCurrently supported targets are:", e.Name)
	for _, name := range Names() {
		b.WriteString("\n")
		b.WriteString(name)
	}
	return b.String()
}

// Names returns the names of all supported targets.
func Names() []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the target with the given name, if any.
func Lookup(name string) (Target, bool) {
	t, ok := byName[name]
	if !ok {
		return Target{}, false
	}
	return *t, true
}

// Resolve returns the compiler triplet for the Kubos target name.
// Unknown names yield an *UnsupportedTargetError; there is no partial
// or case-insensitive matching.
func Resolve(name string) (string, error) {
	t, ok := Lookup(name)
	if !ok {
		return "", &UnsupportedTargetError{Name: name}
	}
	return t.Triplet, nil
}

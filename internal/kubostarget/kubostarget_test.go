// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kubostarget

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"x86-linux-native", "x86_64-unknown-linux-gnu"},
		{"kubos-linux-beaglebone-gcc", "arm-unknown-linux-gnueabihf"},
		{"kubos-linux-pumpkin-mbm2-gcc", "arm-unknown-linux-gnueabihf"},
		{"kubos-linux-isis-gcc", "armv5te-unknown-linux-gnueabi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveDefault(t *testing.T) {
	got, err := Resolve(Default)
	if err != nil {
		t.Fatal(err)
	}
	if want := "x86_64-unknown-linux-gnu"; got != want {
		t.Errorf("Resolve(Default) = %q; want %q", got, want)
	}
}

func TestResolveUnsupported(t *testing.T) {
	for _, name := range []string{"", "bogus", "X86-LINUX-NATIVE", "kubos-linux-isis", "x86-linux-native "} {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(name)
			if err == nil {
				t.Fatalf("Resolve(%q) = %q; want error", name, got)
			}
			var ute *UnsupportedTargetError
			if !errors.As(err, &ute) {
				t.Fatalf("Resolve(%q) error = %T; want *UnsupportedTargetError", name, err)
			}
			if ute.Name != name {
				t.Errorf("error Name = %q; want %q", ute.Name, name)
			}
			msg := err.Error()
			for _, supported := range Names() {
				if !strings.Contains(msg, "\n"+supported) {
					t.Errorf("error %q does not list %q", msg, supported)
				}
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{
		"x86-linux-native",
		"kubos-linux-beaglebone-gcc",
		"kubos-linux-pumpkin-mbm2-gcc",
		"kubos-linux-isis-gcc",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupCopies(t *testing.T) {
	tg, ok := Lookup(Default)
	if !ok {
		t.Fatalf("Lookup(%q) not found", Default)
	}
	tg.Triplet = "mutated"
	if got, _ := Resolve(Default); got == "mutated" {
		t.Error("Lookup returned a target aliasing the table")
	}
}

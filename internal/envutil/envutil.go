// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envutil provides utilities for working with environment
// variables held in "key=value" slices, such as os.Environ or exec.Cmd.Env.
//
// Keys are compared the way the host operating system compares them:
// case-insensitively on Windows, exactly elsewhere.
package envutil

import (
	"runtime"
	"strings"
)

// Split splits a "key=value" string into a key and value.
// A string with no '=' is a key with an empty value.
func Split(kv string) (key, value string) {
	key, value, _ = strings.Cut(kv, "=")
	return key, value
}

// Lookup returns the value of key in env. If key occurs more than once,
// the last occurrence wins, as it does for exec.Cmd.
func Lookup(env []string, key string) (string, bool) {
	return lookup(runtime.GOOS, env, key)
}

// Get is like Lookup but returns the empty string for a missing key.
func Get(env []string, key string) string {
	v, _ := Lookup(env, key)
	return v
}

func lookup(goos string, env []string, key string) (string, bool) {
	want := normKey(goos, key)
	for i := len(env) - 1; i >= 0; i-- {
		k, v := Split(env[i])
		if normKey(goos, k) == want {
			return v, true
		}
	}
	return "", false
}

// Merge returns base overlaid with the key=value pairs in kv.
// Each key appears once in the result, holding its last value, at the
// position of its first occurrence. Neither input is modified.
func Merge(base []string, kv ...string) []string {
	return merge(runtime.GOOS, base, kv)
}

func merge(goos string, base, kv []string) []string {
	out := make([]string, 0, len(base)+len(kv))
	index := make(map[string]int, len(base)+len(kv))
	add := func(e string) {
		k, _ := Split(e)
		k = normKey(goos, k)
		if i, ok := index[k]; ok {
			out[i] = e
			return
		}
		index[k] = len(out)
		out = append(out, e)
	}
	for _, e := range base {
		add(e)
	}
	for _, e := range kv {
		add(e)
	}
	return out
}

func normKey(goos, k string) string {
	if goos == "windows" {
		return strings.ToLower(k)
	}
	return k
}

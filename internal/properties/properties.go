// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package properties reads the trivial key=value text format BVGraph uses
// for its .properties sidecar file. It is intentionally minimal: pulling
// in a general-purpose configuration library for a flat key=value format
// would be the over-engineering the rest of this module avoids.
package properties

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Map is a parsed .properties file.
type Map map[string]string

// Parse reads key=value lines from r, skipping blank lines and lines
// beginning with '#'.
func Parse(r io.Reader) (Map, error) {
	m := make(Map)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.IndexByte(line, '=')
		if i < 0 {
			return nil, errMalformed(line)
		}
		key := strings.TrimSpace(line[:i])
		val := strings.TrimSpace(line[i+1:])
		m[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

type errMalformed string

func (e errMalformed) Error() string { return "properties: malformed line: " + string(e) }

// Int parses key as a base-10 integer, returning def if the key is absent.
func (m Map) Int(key string, def int) (int, error) {
	v, ok := m[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// String returns key, or def if absent.
func (m Map) String(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

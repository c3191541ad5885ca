// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package palette holds the compiled-in replacement tables and the parsers
// that decode them.
package palette

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/walteh/retoken/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultTable is the table a run uses
const DefaultTable = "blue-to-green"

//go:embed tables/*
var tables embed.FS

// 🔌 Parser is the interface for table parsers
type Parser interface {
	// 📝 Parse parses a table from bytes
	Parse(filename string, data []byte) (*text.Table, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📥 Load decodes and validates a table. The format is picked from the
// filename extension.
func Load(filename string, data []byte) (*text.Table, error) {
	p := GetParser(filename)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", filename)
	}

	table, err := p.Parse(filename, data)
	if err != nil {
		return nil, errors.Errorf("parsing table %s: %w", filename, err)
	}

	if table.Name == "" {
		table.Name = strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	}

	if err := table.Validate(); err != nil {
		return nil, errors.Errorf("validating table %s: %w", table.Name, err)
	}

	return table, nil
}

// 📚 Get loads a compiled-in table by name
func Get(name string) (*text.Table, error) {
	entries, err := tables.ReadDir("tables")
	if err != nil {
		return nil, errors.Errorf("reading embedded tables: %w", err)
	}

	for _, entry := range entries {
		filename := entry.Name()
		if strings.TrimSuffix(filename, path.Ext(filename)) != name {
			continue
		}
		data, err := tables.ReadFile(path.Join("tables", filename))
		if err != nil {
			return nil, errors.Errorf("reading embedded table %s: %w", filename, err)
		}
		return Load(filename, data)
	}

	return nil, errors.Errorf("unknown table %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Default loads the blue-to-green table
func Default() (*text.Table, error) {
	return Get(DefaultTable)
}

// Names lists the compiled-in tables
func Names() []string {
	entries, err := tables.ReadDir("tables")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

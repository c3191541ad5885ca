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

package text

import (
	"context"
	"io"
)

// 🔄 Rule is a single literal token replacement
type Rule struct {
	// Old is the token to replace
	Old string `yaml:"old"`

	// New is the token written in its place
	New string `yaml:"new"`
}

// 📚 Table is an ordered list of rules. Rules apply first to last.
type Table struct {
	Name  string
	Rules []Rule
}

// 📊 Result contains the results of a replacement pass
type Result struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of occurrences replaced across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// 🎯 Replacer applies a replacement table to content
type Replacer interface {
	// ReplaceText reads all of content and applies every rule of table in order
	ReplaceText(ctx context.Context, content io.Reader, table *Table) (*Result, error)
}

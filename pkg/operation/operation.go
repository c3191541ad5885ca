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

package operation

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/walteh/retoken/pkg/log"
	"github.com/walteh/retoken/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidEncoding is returned for file content that is not valid UTF-8
var ErrInvalidEncoding = errors.Base("invalid UTF-8 content")

// 🔧 Options contains configuration for the replacer
type Options struct {
	// Fs is the filesystem to operate on. Defaults to the OS filesystem.
	Fs afero.Fs
	// Table is the ordered replacement table
	Table *text.Table
	// Extension selects the files to rewrite, e.g. ".tsx"
	Extension string
	// TextReplacer applies the table. Defaults to text.SequentialReplacer.
	TextReplacer text.Replacer
	// Console receives the "Updated:" lines
	Console *log.Logger
}

// 🎮 Replacer rewrites token occurrences in files, one file at a time
type Replacer struct {
	fs       afero.Fs
	table    *text.Table
	ext      string
	pattern  string
	replacer text.Replacer
	console  *log.Logger
}

// 🏭 New creates a new replacer with the given options
func New(opts Options) (*Replacer, error) {
	if opts.Table == nil {
		return nil, errors.Errorf("table is required")
	}
	if err := opts.Table.Validate(); err != nil {
		return nil, errors.Errorf("validating table: %w", err)
	}
	if opts.Extension == "" {
		return nil, errors.Errorf("extension is required")
	}
	if strings.ContainsAny(opts.Extension, `/\*?[{`) {
		return nil, errors.Errorf("extension %q must be a plain suffix", opts.Extension)
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	replacer := opts.TextReplacer
	if replacer == nil {
		replacer = text.NewSequentialReplacer()
	}

	return &Replacer{
		fs:       fs,
		table:    opts.Table,
		ext:      opts.Extension,
		pattern:  "**/*" + opts.Extension,
		replacer: replacer,
		console:  opts.Console,
	}, nil
}

// 📊 Summary is the outcome of a run
type Summary struct {
	Root         string
	Scanned      int
	Updated      int
	UpdatedPaths []string
}

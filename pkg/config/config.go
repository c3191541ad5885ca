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

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/retoken/pkg/palette"
	"github.com/walteh/retoken/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultRoot is scanned relative to the working directory
	DefaultRoot = "./components"

	// DefaultExtension selects the files to rewrite
	DefaultExtension = ".tsx"
)

// 📚 Config is the complete run configuration. It is fixed at build time.
type Config struct {
	Root      string
	Extension string
	Table     *text.Table
}

// 🎯 Load returns the built-in configuration
func Load(ctx context.Context) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("table", palette.DefaultTable).Msg("loading configuration")

	table, err := palette.Default()
	if err != nil {
		return nil, errors.Errorf("loading table: %w", err)
	}

	cfg := &Config{
		Root:      DefaultRoot,
		Extension: DefaultExtension,
		Table:     table,
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if cfg.Extension == "" {
		return errors.Errorf("extension is required")
	}
	if strings.ContainsAny(cfg.Extension, `/\*?[{`) {
		return errors.Errorf("extension %q must be a plain suffix", cfg.Extension)
	}
	if cfg.Table == nil {
		return errors.Errorf("table is required")
	}
	if err := cfg.Table.Validate(); err != nil {
		return errors.Errorf("table %s: %w", cfg.Table.Name, err)
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	name := ""
	if cfg.Table != nil {
		name = cfg.Table.Name
	}
	return fmt.Sprintf("%s/**/*%s (%s, %d rules)", cfg.Root, cfg.Extension, name, cfg.Table.Len())
}

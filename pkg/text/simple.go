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
	"bytes"
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SequentialReplacer implements Replacer with one strings.ReplaceAll pass per
// rule, in declared order. Matches of a rule see the output of every earlier
// rule, so a single multi-pattern pass would not be equivalent.
type SequentialReplacer struct{}

// NewSequentialReplacer creates a new SequentialReplacer
func NewSequentialReplacer() *SequentialReplacer {
	return &SequentialReplacer{}
}

// ReplaceText implements Replacer.ReplaceText
func (r *SequentialReplacer) ReplaceText(ctx context.Context, content io.Reader, table *Table) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	if table == nil {
		return result, nil
	}

	current := string(originalContent)
	for _, rule := range table.Rules {
		if rule.Old == "" {
			continue
		}

		n := strings.Count(current, rule.Old)
		if n == 0 {
			continue
		}

		result.ReplacementCount += n
		current = strings.ReplaceAll(current, rule.Old, rule.New)
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = !bytes.Equal(result.ModifiedContent, originalContent)
	return result, nil
}

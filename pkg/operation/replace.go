package operation

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// 📄 ReplaceInFile applies the table to the file at path and rewrites it
// when the content changed. It reports whether the file was rewritten.
func (r *Replacer) ReplaceInFile(ctx context.Context, path string) (bool, error) {
	return r.replaceInFile(ctx, path, path)
}

// display is the path printed on the "Updated:" line and carried by errors
func (r *Replacer) replaceInFile(ctx context.Context, path, display string) (bool, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", display).Logger()

	info, err := r.fs.Stat(path)
	if err != nil {
		return false, errors.Errorf("stat %s: %w", display, err)
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", display, err)
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, content); err != nil {
		logger.Debug().Err(err).Msg("content is not valid UTF-8")
		return false, errors.Errorf("decoding %s: %w", display, ErrInvalidEncoding)
	}

	result, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), r.table)
	if err != nil {
		return false, errors.Errorf("replacing tokens in %s: %w", display, err)
	}

	if !result.WasModified {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("file unchanged")
		return false, nil
	}

	if err := afero.WriteFile(r.fs, path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return false, errors.Errorf("writing %s: %w", display, err)
	}

	r.console.Updated(display, result.ReplacementCount)
	return true, nil
}

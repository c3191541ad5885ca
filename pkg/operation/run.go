package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run walks root and calls ReplaceInFile on every file with the target
// extension. The first error stops the run; files already rewritten stay
// rewritten and the partial summary is returned with the error.
func (r *Replacer) Run(ctx context.Context, root string) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Str("pattern", r.pattern).Str("table", r.table.Name).Msg("starting run")

	summary := &Summary{Root: root}

	info, err := r.fs.Stat(root)
	if err != nil {
		return summary, errors.Errorf("reading root %s: %w", root, err)
	}
	if !info.IsDir() {
		return summary, errors.Errorf("root %s is not a directory", root)
	}

	err = afero.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run cancelled: %w", err)
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relative path of %s: %w", path, err)
		}

		ok, err := r.matches(rel)
		if err != nil {
			return err
		}
		if !ok {
			logger.Trace().Str("file", path).Msg("skipping file")
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := r.fs.Stat(path)
			if err == nil && target.IsDir() {
				logger.Debug().Str("file", path).Msg("skipping symlinked directory")
				return nil
			}
		}

		summary.Scanned++

		display := joinDisplay(root, rel)
		updated, err := r.replaceInFile(ctx, path, display)
		if err != nil {
			return err
		}
		if updated {
			summary.Updated++
			summary.UpdatedPaths = append(summary.UpdatedPaths, display)
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Debug().Int("scanned", summary.Scanned).Int("updated", summary.Updated).Msg("run finished")
	return summary, nil
}

// 🔍 matches reports whether rel, a path relative to the root, has the target extension
func (r *Replacer) matches(rel string) (bool, error) {
	matched, err := doublestar.Match(r.pattern, filepath.ToSlash(rel))
	if err != nil {
		return false, errors.Errorf("matching %s against %s: %w", rel, r.pattern, err)
	}
	return matched, nil
}

// joinDisplay joins without cleaning so "./components" stays "./components/..."
func joinDisplay(root, rel string) string {
	sep := string(filepath.Separator)
	return strings.TrimSuffix(root, sep) + sep + rel
}

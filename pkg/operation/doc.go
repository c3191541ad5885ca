// Package operation implements the bulk token replacer.
//
//	+-------------+
//	|     Run     |
//	| (walk root) |
//	+------+------+
//	       |  every **/*<ext>
//	+------+--------+
//	| ReplaceInFile |
//	|  (transform)  |
//	+------+--------+
//	       |  only when bytes differ
//	+------+------+
//	|  write back |
//	+-------------+
//
// 🎯 Purpose:
//   - Walks a root directory and selects files by extension
//   - Applies a text.Table to each file, rule by rule, in declared order
//   - Rewrites a file whole, and only when its content changed
//
// 🔄 Flow:
//  1. Stat the root; a missing root or a non-directory root is an error
//  2. Walk the tree in lexical order, skipping directories and symlinked directories
//  3. Read the whole file and require valid UTF-8
//  4. Replace, compare, write back, report "Updated: <path>"
//
// ⚡ Failure model:
// Files are processed one at a time. The first error stops the run and is
// returned with the partial Summary. Files rewritten before the failure stay
// rewritten; there is no rollback. Errors name the file the way the
// "Updated:" line does.
//
// 🔍 Example:
//
//	r, err := operation.New(operation.Options{
//		Table:     table,
//		Extension: ".tsx",
//		Console:   log.New(os.Stdout, logger),
//	})
//	summary, err := r.Run(ctx, "./components")
package operation

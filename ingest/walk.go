// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/commgraph/logging"
)

// walk visits root breadth-first on the calling goroutine. Directories are
// queued; every other entry is passed to dispatch. Symlinks are resolved
// with os.Stat and symlinked directories are not followed. walk stops early
// when ctx is done or dispatch returns false.
func walk(ctx context.Context, root string, dispatch func(path string) bool, dirFailed func(path string, err error)) {
	queue := []string{root}
	for head := 0; head < len(queue); head++ {
		if ctx.Err() != nil {
			return
		}
		dir := queue[head]
		entries, err := os.ReadDir(dir)
		if err != nil {
			dirFailed(dir, err)
			// ReadDir may return the entries read before the error.
			if len(entries) == 0 {
				continue
			}
		}

		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			switch {
			case e.IsDir():
				queue = append(queue, path)
				continue
			case e.Type()&os.ModeSymlink != 0:
				if info, err := os.Stat(path); err == nil && info.IsDir() {
					logging.FromContext(ctx).Debug("ingest: not following symlinked directory",
						slog.String("path", path))
					continue
				}
			}
			if !dispatch(path) {
				return
			}
		}
	}
}

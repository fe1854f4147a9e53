// Package snapshot prepares the working copy a conversion run edits.
// The source tree is mirrored into the output directory and a fresh git
// repository is committed there before any file is touched, so every
// conversion is inspectable afterwards with plain git diff.
package snapshot

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// Mirror copies the tree rooted at src into dst. Any .git directory in
// the source is excluded; dst gets its own repository via InitRepo.
// dst must not already exist.
func Mirror(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("output directory %s already exists", dst)
	}

	err := filepath.WalkDir(src, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			if entry.Name() == ".git" {
				return filepath.SkipDir
			}
			return os.MkdirAll(target, 0755)
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, info.Mode().Perm())
	})
	if err != nil {
		return utils.WrapCreateError("snapshot of "+src, err)
	}
	return nil
}

// InitRepo initializes a git repository in dir and commits the current
// tree as the pre-conversion baseline.
func InitRepo(ctx context.Context, dir string) error {
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", "Original files before conversion"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			return utils.WrapProcessError(
				fmt.Sprintf("git %s in %s: %s", args[0], dir, string(out)), err)
		}
	}
	return nil
}

package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// Change is one file whose text the conversion altered.
type Change struct {
	Path   string // path relative to the conversion root
	Before string
	After  string
}

// Patch renders the edits turning before into after in unidiff-style
// patch text.
func Patch(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.PatchToText(dmp.PatchMake(before, diffs))
}

// WritePatches writes one .patch file per change into dir. Names are
// deterministic for identical input, so re-running a conversion
// produces an identical patch set.
func WritePatches(dir string, changes []Change) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return utils.WrapCreateError("patch directory "+dir, err)
	}
	for _, change := range changes {
		name := patchName(change.Path)
		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, []byte(Patch(change.Before, change.After)), 0644); err != nil {
			return utils.WrapWriteError("patch "+target, err)
		}
	}
	return nil
}

// invalidFileChars contains characters that are invalid in filenames on
// common filesystems.
var invalidFileChars = regexp.MustCompile(`[\\:*?"<>|]`)

// patchName derives a filesystem-safe, collision-resistant patch file
// name from a relative source path.
func patchName(rel string) string {
	base := filepath.ToSlash(rel)
	base = strings.ReplaceAll(base, "/", "_")
	base = invalidFileChars.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, "._")
	if base == "" {
		base = "patch"
	}
	sum := sha256.Sum256([]byte(rel))
	return base + "_" + hex.EncodeToString(sum[:])[:8] + ".patch"
}

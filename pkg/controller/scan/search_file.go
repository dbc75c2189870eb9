package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Manifest files skip more directories than Go sources. The narrower
// exclusion set for sources is deliberate.
var (
	manifestExcludedDirs = []string{"vendor", "node_modules", ".git", "testdata"}
	sourceExcludedDirs   = []string{"vendor", ".git"}
	manifestExtensions   = []string{".yaml", ".yml", ".json"}
)

// searchManifestFiles enumerates manifest files under the root. Walk errors
// on unreadable subtrees degrade to an empty result for that subtree.
func (c *Controller) searchManifestFiles() []string {
	return c.searchFiles(manifestExtensions, c.excludedDirs(manifestExcludedDirs))
}

// searchSourceFiles enumerates Go source files under the root.
func (c *Controller) searchSourceFiles() []string {
	return c.searchFiles([]string{".go"}, c.excludedDirs(sourceExcludedDirs))
}

func (c *Controller) excludedDirs(defaults []string) map[string]struct{} {
	excluded := make(map[string]struct{}, len(defaults)+len(c.cfg.ExcludeDirs))
	for _, d := range defaults {
		excluded[d] = struct{}{}
	}
	for _, d := range c.cfg.ExcludeDirs {
		excluded[d] = struct{}{}
	}
	return excluded
}

func (c *Controller) searchFiles(extensions []string, excluded map[string]struct{}) []string {
	files := []string{}
	root := c.param.RootDir
	_ = afero.Walk(c.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are treated as absent, not fatal.
			return nil //nolint:nilerr
		}
		if info.IsDir() {
			if _, ok := excluded[info.Name()]; ok && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(p, extensions) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil //nolint:nilerr
		}
		if isExcluded(rel, excluded) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	sort.Strings(files)
	return files
}

// absPath resolves a path returned by the walkers back under the root.
func (c *Controller) absPath(rel string) string {
	return filepath.Join(c.param.RootDir, rel)
}

func hasExtension(p string, extensions []string) bool {
	ext := filepath.Ext(p)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// isExcluded reports whether any path segment is an excluded directory name.
func isExcluded(rel string, excluded map[string]struct{}) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if _, ok := excluded[seg]; ok {
			return true
		}
	}
	return false
}

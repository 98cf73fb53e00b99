package processor

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Discover walks the base path and returns sorted slash-relative paths of the
// regular files under it. Unless noGitignore is set, .gitignore patterns are
// honored; the .gitignore files themselves are never reported.
func (p *Processor) Discover(noGitignore bool) ([]string, error) {
	absRoot, err := filepath.Abs(p.basePath)
	if err != nil {
		return nil, err
	}
	var locators []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == absRoot {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		isDir := d.IsDir()
		if !noGitignore && matchIgnore(absRoot, rel, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir {
			return nil
		}
		if d.Name() == ".gitignore" {
			return nil
		}
		locators = append(locators, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(locators)
	return locators, nil
}

// ancestorDirs lists the directories from "." down to the directory of rel.
func ancestorDirs(rel string) []string {
	dirs := []string{"."}
	dir := filepath.Dir(rel)
	if dir == "." {
		return dirs
	}
	cur := ""
	for _, part := range strings.Split(dir, string(os.PathSeparator)) {
		if cur == "" {
			cur = part
		} else {
			cur = filepath.Join(cur, part)
		}
		dirs = append(dirs, cur)
	}
	return dirs
}

// ignorePatterns collects .gitignore patterns from the given directories
// under absRoot, anchored at the directory that declared them.
func ignorePatterns(absRoot string, dirs []string) []gitgitignore.Pattern {
	var patterns []gitgitignore.Pattern
	for _, d := range dirs {
		b, err := os.ReadFile(filepath.Join(absRoot, d, ".gitignore"))
		if err != nil {
			continue
		}
		var base []string
		if d != "." && d != "" {
			base = strings.Split(filepath.ToSlash(d), "/")
		}
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitgitignore.ParsePattern(line, base))
		}
	}
	return patterns
}

// matchIgnore reports whether rel is ignored by the .gitignore files between
// absRoot and rel's own directory.
func matchIgnore(absRoot, rel string, isDir bool) bool {
	patterns := ignorePatterns(absRoot, ancestorDirs(rel))
	if len(patterns) == 0 {
		return false
	}
	var comps []string
	if rel != "." && rel != "" {
		comps = strings.Split(rel, string(os.PathSeparator))
	}
	return gitgitignore.NewMatcher(patterns).Match(comps, isDir)
}

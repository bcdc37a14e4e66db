package findclone

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreManager holds regular expressions for paths the scanner must skip.
// Patterns are matched against the slash-separated path relative to the scan root.
type IgnoreManager struct {
	patterns []*regexp.Regexp
}

// NewIgnoreManager compiles the given patterns
func NewIgnoreManager(patterns []string) (*IgnoreManager, error) {
	im := &IgnoreManager{}
	for _, p := range patterns {
		if err := im.AddPattern(p); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// AddPattern adds a new ignore pattern
func (im *IgnoreManager) AddPattern(patternStr string) error {
	patternStr = strings.TrimSpace(patternStr)
	if patternStr == "" {
		return nil
	}
	pattern, err := regexp.Compile(patternStr)
	if err != nil {
		return fmt.Errorf("invalid regex pattern: %s - %w", patternStr, err)
	}
	im.patterns = append(im.patterns, pattern)
	return nil
}

// LoadIgnoreFile appends the patterns found in an ignore file.
// Empty lines and lines starting with # are skipped.
func (im *IgnoreManager) LoadIgnoreFile(ignorePath string) error {
	file, err := os.Open(ignorePath)
	if err != nil {
		return fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := im.AddPattern(line); err != nil {
			return fmt.Errorf("ignore file line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ignore file: %w", err)
	}
	return nil
}

// ShouldIgnore checks if a path should be ignored based on patterns
func (im *IgnoreManager) ShouldIgnore(relativePath string) bool {
	if im == nil {
		return false
	}
	normalisedPath := filepath.ToSlash(relativePath)
	for _, pattern := range im.patterns {
		if pattern.MatchString(normalisedPath) {
			return true
		}
	}
	return false
}

// HasPatterns returns true if there are any ignore patterns loaded
func (im *IgnoreManager) HasPatterns() bool {
	return im != nil && len(im.patterns) > 0
}

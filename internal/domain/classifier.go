// Package domain contains the coverage analysis and test scaffolding logic.
package domain

import (
	"path/filepath"
	"strings"

	m "qacheck.dev/pkg/qacheck/internal/model"
)

// ClassifierConfig lists the naming conventions used to tell sources and
// tests apart. It is treated as immutable once handed to a Classifier.
type ClassifierConfig struct {
	ExcludedDirs     []string
	SourceExtensions []string
	TestSuffixes     []string
	TestDirName      string
}

// DefaultClassifierConfig returns the JavaScript/TypeScript conventions.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ExcludedDirs:     []string{"node_modules", ".git", "dist", "build", "public"},
		SourceExtensions: []string{".js", ".jsx", ".ts", ".tsx"},
		TestSuffixes:     []string{".test.js", ".spec.js", ".test.jsx", ".spec.jsx"},
		TestDirName:      "__tests__",
	}
}

// Classifier decides whether a path under the scan root is a test, a
// source candidate, or neither.
type Classifier struct {
	excludedDirs     map[string]struct{}
	sourceExtensions map[string]struct{}
	testSuffixes     []string
	testDirName      string
}

// NewClassifier copies cfg so later changes to the caller's slices have no effect.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{
		excludedDirs:     toSet(cfg.ExcludedDirs),
		sourceExtensions: toSet(cfg.SourceExtensions),
		testSuffixes:     append([]string(nil), cfg.TestSuffixes...),
		testDirName:      cfg.TestDirName,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

// IsExcluded reports whether any segment of rel names an excluded directory.
func (c *Classifier) IsExcluded(rel m.Path) bool {
	for _, segment := range segments(rel) {
		if _, ok := c.excludedDirs[segment]; ok {
			return true
		}
	}

	return false
}

// IsTestFile reports whether rel is a test by file suffix or by living in a
// test directory at any depth.
func (c *Classifier) IsTestFile(rel m.Path) bool {
	name := filepath.Base(string(rel))
	for _, suffix := range c.testSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	if c.testDirName == "" {
		return false
	}

	for _, segment := range segments(rel) {
		if segment == c.testDirName {
			return true
		}
	}

	return false
}

// IsSourceFile reports whether rel has a recognised source extension.
// It does not exclude tests; use Classify for the full decision.
func (c *Classifier) IsSourceFile(rel m.Path) bool {
	_, ext := SplitName(filepath.Base(string(rel)))
	_, ok := c.sourceExtensions[ext]

	return ok
}

// Classify returns the kind of rel. The test check runs before the
// extension check, so foo.test.jsx is a test and never a source.
func (c *Classifier) Classify(rel m.Path) m.FileKind {
	switch {
	case c.IsExcluded(rel):
		return m.KindIgnored
	case c.IsTestFile(rel):
		return m.KindTest
	case c.IsSourceFile(rel):
		return m.KindSource
	default:
		return m.KindIgnored
	}
}

// Record classifies rel and wraps it in a FileRecord.
func (c *Classifier) Record(rel m.Path) m.FileRecord {
	return m.FileRecord{
		Path: rel,
		Name: filepath.Base(string(rel)),
		Kind: c.Classify(rel),
	}
}

// ExpectedTestName returns the test file name a source file is matched
// against: stem + ".test" + ext. The .spec convention is never produced.
func ExpectedTestName(name string) string {
	stem, ext := SplitName(name)
	return stem + ".test" + ext
}

// SplitName splits a base name into stem and final extension. A leading dot
// does not start an extension and neither does a trailing one, so ".env"
// and "notes." have no extension.
func SplitName(name string) (string, string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}

	return name[:i], name[i:]
}

func segments(rel m.Path) []string {
	cleaned := filepath.Clean(string(rel))
	if cleaned == "." {
		return nil
	}

	return strings.Split(filepath.ToSlash(cleaned), "/")
}

// Package model defines the data structures shared by the qacheck tools.
package model

// Path represents a file system path.
type Path string

// FileKind is the classification of a single file found during a scan.
type FileKind int

const (
	// KindIgnored marks files that are neither tests nor recognised sources.
	KindIgnored FileKind = iota
	// KindSource marks candidate source files.
	KindSource
	// KindTest marks files recognised as tests by naming convention.
	KindTest
)

func (k FileKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindTest:
		return "test"
	case KindIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// FileRecord is a file found under the scan root.
type FileRecord struct {
	Path Path // relative to the scan root
	Name string
	Kind FileKind
}

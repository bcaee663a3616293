package commands

import (
	"errors"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/allfiles/internal/filter"
)

// DefaultMaxDepth bounds directory recursion when no limit is configured.
const DefaultMaxDepth = 512

// ErrDepthExceeded is returned when a traversal descends below the configured depth limit.
var ErrDepthExceeded = errors.New("maximum traversal depth exceeded")

var errMissingFilter = errors.New("path filter is not configured")

// TreeBuilder builds directory tree nodes using configured options.
type TreeBuilder struct {
	FileSystem afero.Fs
	Filter     *filter.PathFilter
	MaxDepth   int
	// RootLabel replaces the base name of the root directory in the rendered tree.
	RootLabel string
}

// ContentCollector enumerates file contents using configured options.
type ContentCollector struct {
	FileSystem afero.Fs
	Filter     *filter.PathFilter
	Logger     *zap.Logger
	MaxDepth   int
}

func effectiveMaxDepth(configured int) int {
	if configured <= 0 {
		return DefaultMaxDepth
	}
	return configured
}

func effectiveFileSystem(configured afero.Fs) afero.Fs {
	if configured == nil {
		return afero.NewOsFs()
	}
	return configured
}

// Package walk enumerates a directory tree with a pool of workers. Each worker
// reads whole directories and reports their entries to its own Visitor, so
// entries arrive in no particular order across directories and depths.
package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultThreads is the worker count used when none is configured.
	DefaultThreads = 3

	hiddenEntryPrefix = "."

	errorStatRootFormat     = "stat root %s: %w"
	errorVisitEntryFormat   = "visiting %s: %w"
	logMessageReadDirectory = "skipping unreadable directory"
	logMessageStatEntry     = "skipping entry without metadata"
	logMessageIgnoreFile    = "ignoring malformed ignore file"
	logMessageSymlinkLoop   = "not descending into symlink loop"
	logFieldPath            = "path"
)

// ErrNilVisitorBuilder is returned when Visit is called without a builder.
var ErrNilVisitorBuilder = errors.New("walk: visitor builder is nil")

// Entry is one filesystem object discovered during the walk.
type Entry struct {
	Path  string
	Name  string
	Depth int
	// Info describes the entry itself, or the symlink target when links are followed.
	Info fs.FileInfo
	// IsSymlink is true for symbolic links that were not followed.
	IsSymlink bool
	// IsLoop is true for followed links that point at one of their ancestors.
	IsLoop bool
}

// IsDir reports whether the entry will be descended into.
func (entry Entry) IsDir() bool {
	return entry.Info != nil && entry.Info.IsDir() && !entry.IsSymlink
}

// Filter decides whether an entry is reported. Rejected directories are not descended.
type Filter func(entry Entry) bool

// Visitor receives entries on a single worker. Returning an error stops the walk.
type Visitor interface {
	Visit(entry Entry) error
}

// VisitorBuilder creates one Visitor per worker.
type VisitorBuilder interface {
	Build() Visitor
}

// VisitorFunc adapts a function to Visitor.
type VisitorFunc func(entry Entry) error

// Visit implements Visitor.
func (visitorFunc VisitorFunc) Visit(entry Entry) error {
	return visitorFunc(entry)
}

// Options configures a Walker.
type Options struct {
	Root           string
	FollowLinks    bool
	UseIgnoreFiles bool
	IncludeHidden  bool
	Threads        int
	Filter         Filter
	Logger         *zap.Logger
}

// Walker performs a parallel traversal rooted at a single path.
type Walker struct {
	options  Options
	rootInfo fs.FileInfo
}

// New validates the root and returns a Walker ready to Visit.
func New(options Options) (*Walker, error) {
	if options.Threads < 1 {
		options.Threads = DefaultThreads
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	rootInfo, statError := os.Stat(options.Root)
	if statError != nil {
		return nil, fmt.Errorf(errorStatRootFormat, options.Root, statError)
	}
	return &Walker{options: options, rootInfo: rootInfo}, nil
}

// Threads returns the number of workers Visit will run.
func (walker *Walker) Threads() int {
	return walker.options.Threads
}

// Visit walks the tree, returning after every worker has exited. The root is
// reported at depth zero and is never filtered.
func (walker *Walker) Visit(ctx context.Context, builder VisitorBuilder) error {
	if builder == nil {
		return ErrNilVisitorBuilder
	}
	rootEntry := Entry{
		Path:  walker.options.Root,
		Name:  filepath.Base(walker.options.Root),
		Depth: 0,
		Info:  walker.rootInfo,
	}
	if visitError := builder.Build().Visit(rootEntry); visitError != nil {
		return fmt.Errorf(errorVisitEntryFormat, rootEntry.Path, visitError)
	}
	if !rootEntry.IsDir() {
		return nil
	}

	queue := newJobQueue()
	queue.push(directoryJob{
		path:         walker.options.Root,
		depth:        0,
		inRepository: walker.options.UseIgnoreFiles && insideRepository(walker.options.Root),
		ancestors:    []fs.FileInfo{walker.rootInfo},
	})

	group, groupContext := errgroup.WithContext(ctx)
	stopQueue := context.AfterFunc(groupContext, queue.close)
	defer stopQueue()

	for workerIndex := 0; workerIndex < walker.options.Threads; workerIndex++ {
		visitor := builder.Build()
		group.Go(func() error {
			for {
				job, available := queue.pop()
				if !available {
					return groupContext.Err()
				}
				processError := walker.processDirectory(job, queue, visitor)
				queue.finish()
				if processError != nil {
					return processError
				}
			}
		})
	}
	return group.Wait()
}

func (walker *Walker) processDirectory(job directoryJob, queue *jobQueue, visitor Visitor) error {
	logger := walker.options.Logger
	directoryEntries, readError := os.ReadDir(job.path)
	if readError != nil {
		logger.Debug(logMessageReadDirectory, zap.String(logFieldPath, job.path), zap.Error(readError))
		return nil
	}

	matchers := job.matchers
	inRepository := job.inRepository
	if walker.options.UseIgnoreFiles {
		if !inRepository {
			inRepository = containsRepositoryMarker(directoryEntries)
		}
		directoryMatchers, loadError := loadDirectoryMatchers(job.path, inRepository)
		if loadError != nil {
			logger.Debug(logMessageIgnoreFile, zap.String(logFieldPath, job.path), zap.Error(loadError))
		}
		if len(directoryMatchers) > 0 {
			matchers = append(append([]scopedMatcher{}, job.matchers...), directoryMatchers...)
		}
	}

	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !walker.options.IncludeHidden && strings.HasPrefix(entryName, hiddenEntryPrefix) {
			continue
		}
		entryPath := filepath.Join(job.path, entryName)
		entry, entryError := walker.describe(entryPath, entryName, job)
		if entryError != nil {
			logger.Debug(logMessageStatEntry, zap.String(logFieldPath, entryPath), zap.Error(entryError))
			continue
		}
		if walker.options.UseIgnoreFiles && isIgnored(matchers, entryPath, entry.IsDir()) {
			continue
		}
		if walker.options.Filter != nil && !walker.options.Filter(entry) {
			continue
		}
		if visitError := visitor.Visit(entry); visitError != nil {
			return fmt.Errorf(errorVisitEntryFormat, entryPath, visitError)
		}
		if !entry.IsDir() {
			continue
		}
		if entry.IsLoop {
			logger.Debug(logMessageSymlinkLoop, zap.String(logFieldPath, entryPath))
			continue
		}
		queue.push(directoryJob{
			path:         entryPath,
			depth:        entry.Depth,
			inRepository: inRepository,
			matchers:     matchers,
			ancestors:    appendAncestor(job.ancestors, entry.Info, walker.options.FollowLinks),
		})
	}
	return nil
}

func containsRepositoryMarker(directoryEntries []os.DirEntry) bool {
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.Name() == RepositoryMarkerName {
			return true
		}
	}
	return false
}

// describe collects metadata for one directory entry, following links when configured.
func (walker *Walker) describe(entryPath string, entryName string, job directoryJob) (Entry, error) {
	linkInfo, lstatError := os.Lstat(entryPath)
	if lstatError != nil {
		return Entry{}, lstatError
	}
	entry := Entry{
		Path:  entryPath,
		Name:  entryName,
		Depth: job.depth + 1,
		Info:  linkInfo,
	}
	if linkInfo.Mode()&fs.ModeSymlink == 0 {
		return entry, nil
	}
	if !walker.options.FollowLinks {
		entry.IsSymlink = true
		return entry, nil
	}
	targetInfo, statError := os.Stat(entryPath)
	if statError != nil {
		// Dangling links are reported as links.
		entry.IsSymlink = true
		return entry, nil
	}
	entry.Info = targetInfo
	if targetInfo.IsDir() {
		for _, ancestorInfo := range job.ancestors {
			if os.SameFile(ancestorInfo, targetInfo) {
				entry.IsLoop = true
				break
			}
		}
	}
	return entry, nil
}

func appendAncestor(ancestors []fs.FileInfo, info fs.FileInfo, followLinks bool) []fs.FileInfo {
	if !followLinks {
		return nil
	}
	extended := make([]fs.FileInfo, len(ancestors), len(ancestors)+1)
	copy(extended, ancestors)
	return append(extended, info)
}

package config

import (
	"fmt"
	"strings"

	"github.com/temirov/dirtree/internal/units"
	"github.com/temirov/dirtree/internal/utils"
	"github.com/temirov/dirtree/internal/walk"
)

// FileType restricts which kind of entry a pattern keeps.
type FileType string

const (
	// FileTypeAny applies no restriction.
	FileTypeAny FileType = ""
	// FileTypeFile keeps regular files.
	FileTypeFile FileType = "file"
	// FileTypeDir keeps directories.
	FileTypeDir FileType = "dir"
	// FileTypeLink keeps symbolic links.
	FileTypeLink FileType = "link"
)

// SortType names a sibling ordering.
type SortType string

const (
	SortName        SortType = "name"
	SortNameReverse SortType = "rname"
	SortSize        SortType = "size"
	SortSizeReverse SortType = "rsize"
	SortTime        SortType = "time"
	SortTimeReverse SortType = "rtime"
	SortNone        SortType = "none"
)

// DirOrder places directories relative to their siblings.
type DirOrder string

const (
	DirOrderNone  DirOrder = "none"
	DirOrderFirst DirOrder = "first"
	DirOrderLast  DirOrder = "last"
)

// Output formats understood by the renderer.
const (
	FormatTree = "tree"
	FormatJSON = "json"
)

const errorInvalidValueFormat = "%w %q (expected one of %s)"

// ColumnProperties holds the widest value seen for each numeric column.
type ColumnProperties struct {
	MaxSizeWidth  int
	MaxInoWidth   int
	MaxNlinkWidth int
	MaxBlockWidth int
}

// Context is the resolved configuration of one scan and its rendering.
type Context struct {
	Directory   string
	FollowLinks bool
	NoIgnore    bool
	Hidden      bool
	Threads     int

	Pattern  *string
	Glob     bool
	IGlob    bool
	FileType FileType

	DiskUsage units.DiskUsage
	Unit      units.PrefixKind
	Human     bool
	Long      bool

	Prune    bool
	DirsOnly bool
	Sort     SortType
	DirOrder DirOrder

	Level    int
	Truncate bool
	Format   string
	NoColor  bool

	// WindowWidth is the terminal width recorded after assembly when Truncate is set.
	WindowWidth int
	// Columns is the final column layout recorded after assembly.
	Columns ColumnProperties
}

// DefaultContext returns the configuration used when nothing is overridden.
func DefaultContext() Context {
	return Context{
		Directory: utils.DefaultDirectory,
		Threads:   walk.DefaultThreads,
		DiskUsage: units.DiskUsageLogical,
		Unit:      units.PrefixKindBinary,
		Sort:      SortName,
		DirOrder:  DirOrderNone,
		Format:    FormatTree,
	}
}

// Dir returns the directory to scan.
func (ctx *Context) Dir() string {
	if strings.TrimSpace(ctx.Directory) == "" {
		return utils.DefaultDirectory
	}
	return ctx.Directory
}

// ShouldPrune reports whether empty directories are removed after assembly.
// A pattern filter hollows out directories, so it implies pruning unless the
// filter itself keeps directories.
func (ctx *Context) ShouldPrune() bool {
	if ctx.Prune {
		return true
	}
	return ctx.Pattern != nil && ctx.FileType != FileTypeDir
}

// UpdateColumnProperties records the final column layout.
func (ctx *Context) UpdateColumnProperties(columns ColumnProperties) {
	ctx.Columns = columns
}

// SetWindowWidth records the width of the terminal attached to standard output.
func (ctx *Context) SetWindowWidth() {
	ctx.WindowWidth = terminalWidth()
}

// Validate checks enumerated values that may have come from configuration files.
func (ctx *Context) Validate() error {
	if _, parseError := ParseSortType(string(ctx.Sort)); parseError != nil {
		return parseError
	}
	if _, parseError := ParseDirOrder(string(ctx.DirOrder)); parseError != nil {
		return parseError
	}
	if _, parseError := ParseFileType(string(ctx.FileType)); parseError != nil {
		return parseError
	}
	if _, parseError := ParseFormat(ctx.Format); parseError != nil {
		return parseError
	}
	if ctx.Glob && ctx.IGlob {
		return ErrConflictingPatternFlavors
	}
	return nil
}

// ParseSortType converts a name into a SortType.
func ParseSortType(value string) (SortType, error) {
	candidate := SortType(strings.ToLower(strings.TrimSpace(value)))
	switch candidate {
	case "":
		return SortName, nil
	case SortName, SortNameReverse, SortSize, SortSizeReverse, SortTime, SortTimeReverse, SortNone:
		return candidate, nil
	default:
		return SortName, fmt.Errorf(errorInvalidValueFormat, ErrInvalidSort, value, "name, rname, size, rsize, time, rtime, none")
	}
}

// ParseDirOrder converts a name into a DirOrder.
func ParseDirOrder(value string) (DirOrder, error) {
	candidate := DirOrder(strings.ToLower(strings.TrimSpace(value)))
	switch candidate {
	case "":
		return DirOrderNone, nil
	case DirOrderNone, DirOrderFirst, DirOrderLast:
		return candidate, nil
	default:
		return DirOrderNone, fmt.Errorf(errorInvalidValueFormat, ErrInvalidDirOrder, value, "none, first, last")
	}
}

// ParseFileType converts a name into a FileType.
func ParseFileType(value string) (FileType, error) {
	candidate := FileType(strings.ToLower(strings.TrimSpace(value)))
	switch candidate {
	case FileTypeAny, FileTypeFile, FileTypeDir, FileTypeLink:
		return candidate, nil
	case "f":
		return FileTypeFile, nil
	case "d":
		return FileTypeDir, nil
	case "l":
		return FileTypeLink, nil
	default:
		return FileTypeAny, fmt.Errorf(errorInvalidValueFormat, ErrInvalidFileType, value, "file, dir, link")
	}
}

// ParseFormat validates an output format name.
func ParseFormat(value string) (string, error) {
	candidate := strings.ToLower(strings.TrimSpace(value))
	switch candidate {
	case "":
		return FormatTree, nil
	case FormatTree, FormatJSON:
		return candidate, nil
	default:
		return FormatTree, fmt.Errorf(errorInvalidValueFormat, ErrInvalidFormat, value, "tree, json")
	}
}

// ParseDiskUsage wraps units.ParseDiskUsage with the package sentinel.
func ParseDiskUsage(value string) (units.DiskUsage, error) {
	diskUsage, parseError := units.ParseDiskUsage(value)
	if parseError != nil {
		return diskUsage, fmt.Errorf("%w: %w", ErrInvalidDiskUsage, parseError)
	}
	return diskUsage, nil
}

// ParseUnit wraps units.ParsePrefixKind with the package sentinel.
func ParseUnit(value string) (units.PrefixKind, error) {
	prefixKind, parseError := units.ParsePrefixKind(value)
	if parseError != nil {
		return prefixKind, fmt.Errorf("%w: %w", ErrInvalidUnit, parseError)
	}
	return prefixKind, nil
}

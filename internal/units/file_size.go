package units

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DiskUsage selects which byte count represents an entry.
type DiskUsage int

const (
	// DiskUsageLogical uses the apparent length of a file.
	DiskUsageLogical DiskUsage = iota
	// DiskUsagePhysical uses the storage allocated to a file.
	DiskUsagePhysical
)

const (
	diskUsageLogicalName  = "logical"
	diskUsagePhysicalName = "physical"

	errorUnknownDiskUsageFormat = "unknown disk usage mode %q (expected %s or %s)"

	humanDisplayFormat = "%.2f %s"
	rawDisplayFormat   = "%d %s"
)

// ParseDiskUsage converts a configuration value into a DiskUsage.
func ParseDiskUsage(value string) (DiskUsage, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", diskUsageLogicalName:
		return DiskUsageLogical, nil
	case diskUsagePhysicalName:
		return DiskUsagePhysical, nil
	default:
		return DiskUsageLogical, fmt.Errorf(errorUnknownDiskUsageFormat, value, diskUsageLogicalName, diskUsagePhysicalName)
	}
}

func (usage DiskUsage) String() string {
	if usage == DiskUsagePhysical {
		return diskUsagePhysicalName
	}
	return diskUsageLogicalName
}

// FileSize pairs a byte count with its display settings. The display label is
// computed once by PrecomputeUnpaddedDisplay so renderers never reformat it.
type FileSize struct {
	Bytes     int64
	DiskUsage DiskUsage
	Human     bool
	Unit      PrefixKind

	// SizeColumns is the display width of the precomputed label.
	SizeColumns int

	unpaddedDisplay string
}

// NewFileSize constructs a FileSize without a precomputed display.
func NewFileSize(bytes int64, diskUsage DiskUsage, human bool, unit PrefixKind) FileSize {
	return FileSize{
		Bytes:     bytes,
		DiskUsage: diskUsage,
		Human:     human,
		Unit:      unit,
	}
}

// Add accumulates the bytes of other into the receiver and invalidates its display.
func (fileSize *FileSize) Add(other FileSize) {
	fileSize.Bytes += other.Bytes
	fileSize.unpaddedDisplay = ""
	fileSize.SizeColumns = 0
}

// PrecomputeUnpaddedDisplay formats the label and records its width.
func (fileSize *FileSize) PrecomputeUnpaddedDisplay() {
	fileSize.unpaddedDisplay = fileSize.format()
	fileSize.SizeColumns = runewidth.StringWidth(fileSize.unpaddedDisplay)
}

// UnpaddedDisplay returns the precomputed label, formatting it on demand when absent.
func (fileSize FileSize) UnpaddedDisplay() string {
	if fileSize.unpaddedDisplay == "" {
		return fileSize.format()
	}
	return fileSize.unpaddedDisplay
}

func (fileSize FileSize) String() string {
	return fileSize.UnpaddedDisplay()
}

func (fileSize FileSize) format() string {
	if !fileSize.Human {
		return fmt.Sprintf(rawDisplayFormat, fileSize.Bytes, BinBase.Label())
	}
	prefix := PrefixFor(fileSize.Unit, fileSize.Bytes)
	if prefix.BaseValue() == 1 {
		return fmt.Sprintf(rawDisplayFormat, fileSize.Bytes, prefix.Label())
	}
	scaled := float64(fileSize.Bytes) / float64(prefix.BaseValue())
	return fmt.Sprintf(humanDisplayFormat, scaled, prefix.Label())
}

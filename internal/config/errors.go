package config

import "errors"

var (
	// ErrEmptyGlob is returned when a glob flavor is requested with an empty pattern.
	ErrEmptyGlob = errors.New("no glob was provided")
	// ErrInvalidGlob wraps malformed glob syntax.
	ErrInvalidGlob = errors.New("invalid glob")
	// ErrInvalidRegularExpression wraps a pattern that does not compile.
	ErrInvalidRegularExpression = errors.New("invalid regular expression")
	// ErrPatternNotProvided is returned when a pattern flavor or file type is requested without a pattern.
	ErrPatternNotProvided = errors.New("missing '--pattern' argument")
	// ErrConflictingPatternFlavors is returned when both glob and iglob are requested.
	ErrConflictingPatternFlavors = errors.New("--glob and --iglob are mutually exclusive")
	// ErrInvalidSort is returned for an unknown sort name.
	ErrInvalidSort = errors.New("invalid sort")
	// ErrInvalidDirOrder is returned for an unknown directory ordering.
	ErrInvalidDirOrder = errors.New("invalid directory order")
	// ErrInvalidFileType is returned for an unknown file type restriction.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidDiskUsage is returned for an unknown disk usage mode.
	ErrInvalidDiskUsage = errors.New("invalid disk usage mode")
	// ErrInvalidUnit is returned for an unknown unit prefix kind.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
)

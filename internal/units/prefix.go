// Package units maps byte counts onto binary and SI unit prefixes and carries
// precomputed size labels used when aligning output columns.
package units

import (
	"fmt"
	"strings"
)

// PrefixKind selects the scale used for human-readable sizes.
type PrefixKind int

const (
	// PrefixKindBinary scales by powers of 1024.
	PrefixKindBinary PrefixKind = iota
	// PrefixKindSI scales by powers of 1000.
	PrefixKindSI
)

const (
	prefixKindBinaryName = "bin"
	prefixKindSIName     = "si"

	errorUnknownPrefixKindFormat = "unknown unit prefix kind %q (expected %s or %s)"
)

// ParsePrefixKind converts a configuration value into a PrefixKind.
func ParsePrefixKind(value string) (PrefixKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", prefixKindBinaryName, "binary":
		return PrefixKindBinary, nil
	case prefixKindSIName:
		return PrefixKindSI, nil
	default:
		return PrefixKindBinary, fmt.Errorf(errorUnknownPrefixKindFormat, value, prefixKindBinaryName, prefixKindSIName)
	}
}

// String returns the configuration name of the kind.
func (kind PrefixKind) String() string {
	if kind == PrefixKindSI {
		return prefixKindSIName
	}
	return prefixKindBinaryName
}

// UnitPrefix is a magnitude that a byte count can be expressed in.
type UnitPrefix interface {
	// BaseValue is the number of bytes one unit of the prefix stands for.
	BaseValue() uint64
	// Label is the short display suffix, such as "KiB" or "MB".
	Label() string
}

// BinPrefix enumerates binary prefixes.
type BinPrefix int

const (
	BinBase BinPrefix = iota
	Kibi
	Mebi
	Gibi
	Tebi
)

var binLabels = [...]string{"B", "KiB", "MiB", "GiB", "TiB"}

// BaseValue implements UnitPrefix.
func (prefix BinPrefix) BaseValue() uint64 {
	return uint64(1) << (10 * uint(prefix))
}

// Label implements UnitPrefix.
func (prefix BinPrefix) Label() string {
	return binLabels[prefix]
}

func (prefix BinPrefix) String() string {
	return prefix.Label()
}

// BinPrefixFor returns the largest binary prefix whose base value does not exceed value.
// Zero and negative values select BinBase.
func BinPrefixFor(value int64) BinPrefix {
	switch {
	case value < 1<<10:
		return BinBase
	case value < 1<<20:
		return Kibi
	case value < 1<<30:
		return Mebi
	case value < 1<<40:
		return Gibi
	default:
		return Tebi
	}
}

// SiPrefix enumerates decimal prefixes.
type SiPrefix int

const (
	SiBase SiPrefix = iota
	Kilo
	Mega
	Giga
	Tera
)

var siLabels = [...]string{"B", "KB", "MB", "GB", "TB"}

// BaseValue implements UnitPrefix.
func (prefix SiPrefix) BaseValue() uint64 {
	baseValue := uint64(1)
	for step := SiBase; step < prefix; step++ {
		baseValue *= 1000
	}
	return baseValue
}

// Label implements UnitPrefix.
func (prefix SiPrefix) Label() string {
	return siLabels[prefix]
}

func (prefix SiPrefix) String() string {
	return prefix.Label()
}

// SiPrefixFor returns the largest SI prefix whose base value does not exceed value.
// Zero and negative values select SiBase.
func SiPrefixFor(value int64) SiPrefix {
	switch {
	case value < 1_000:
		return SiBase
	case value < 1_000_000:
		return Kilo
	case value < 1_000_000_000:
		return Mega
	case value < 1_000_000_000_000:
		return Giga
	default:
		return Tera
	}
}

// PrefixFor returns the prefix of the requested scale for value.
func PrefixFor(kind PrefixKind, value int64) UnitPrefix {
	if kind == PrefixKindSI {
		return SiPrefixFor(value)
	}
	return BinPrefixFor(value)
}

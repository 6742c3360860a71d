package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/temirov/dirtree/internal/walk"
)

const (
	errorInvalidGlobFormat  = "%w %q: %w"
	errorInvalidRegexFormat = "%w %q: %w"
)

// EntryPredicate materializes the configured name filter. It returns a nil
// filter when no pattern is configured.
func (ctx *Context) EntryPredicate() (walk.Filter, error) {
	if ctx.Glob && ctx.IGlob {
		return nil, ErrConflictingPatternFlavors
	}
	if ctx.Pattern == nil {
		if ctx.Glob || ctx.IGlob || ctx.FileType != FileTypeAny {
			return nil, ErrPatternNotProvided
		}
		return nil, nil
	}
	if ctx.Glob || ctx.IGlob {
		return ctx.GlobPredicate()
	}
	return ctx.RegexPredicate()
}

// GlobPredicate matches entry names against the pattern with shell glob
// semantics, case-insensitively for iglob.
func (ctx *Context) GlobPredicate() (walk.Filter, error) {
	matchName, matcherError := ctx.globMatcher()
	if matcherError != nil {
		return nil, matcherError
	}
	return ctx.typedPredicate(matchName), nil
}

// RegexPredicate matches entry names against the pattern as a regular expression.
func (ctx *Context) RegexPredicate() (walk.Filter, error) {
	matchName, matcherError := ctx.regexMatcher()
	if matcherError != nil {
		return nil, matcherError
	}
	return ctx.typedPredicate(matchName), nil
}

// DirectoryMatcher returns the name test for directory-typed filters. The walk
// filter admits every directory in that mode, so nested matches are reached,
// and the tree keeps only matching directories and their ancestors. It returns
// nil for every other configuration.
func (ctx *Context) DirectoryMatcher() (func(name string) bool, error) {
	if ctx.Pattern == nil || ctx.FileType != FileTypeDir {
		return nil, nil
	}
	if ctx.Glob && ctx.IGlob {
		return nil, ErrConflictingPatternFlavors
	}
	if ctx.Glob || ctx.IGlob {
		return ctx.globMatcher()
	}
	return ctx.regexMatcher()
}

func (ctx *Context) globMatcher() (func(name string) bool, error) {
	if ctx.Pattern == nil {
		return nil, ErrPatternNotProvided
	}
	pattern := strings.TrimSpace(*ctx.Pattern)
	if pattern == "" {
		return nil, ErrEmptyGlob
	}
	caseInsensitive := ctx.IGlob
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
	}
	if _, matchError := filepath.Match(pattern, ""); matchError != nil {
		return nil, fmt.Errorf(errorInvalidGlobFormat, ErrInvalidGlob, pattern, matchError)
	}
	return func(name string) bool {
		if caseInsensitive {
			name = strings.ToLower(name)
		}
		isMatched, _ := filepath.Match(pattern, name)
		return isMatched
	}, nil
}

func (ctx *Context) regexMatcher() (func(name string) bool, error) {
	if ctx.Pattern == nil {
		return nil, ErrPatternNotProvided
	}
	expression, compileError := regexp.Compile(*ctx.Pattern)
	if compileError != nil {
		return nil, fmt.Errorf(errorInvalidRegexFormat, ErrInvalidRegularExpression, *ctx.Pattern, compileError)
	}
	return expression.MatchString, nil
}

// typedPredicate combines a name matcher with the file-type restriction.
// Directories always pass so matches beneath non-matching directories are
// still reached. Directory names are tested after assembly instead.
func (ctx *Context) typedPredicate(matchName func(name string) bool) walk.Filter {
	fileType := ctx.FileType
	return func(entry walk.Entry) bool {
		if entry.IsDir() {
			return true
		}
		switch fileType {
		case FileTypeFile:
			if entry.IsSymlink {
				return false
			}
		case FileTypeDir:
			return false
		case FileTypeLink:
			if !entry.IsSymlink {
				return false
			}
		}
		return matchName(entry.Name)
	}
}

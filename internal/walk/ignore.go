package walk

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

const (
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// IgnoreFileName is the name of the tool-agnostic ignore file.
	IgnoreFileName = ".ignore"
	// RepositoryMarkerName marks the top of a Git checkout.
	RepositoryMarkerName = ".git"

	errorCompileIgnoreFileFormat = "compiling %s: %w"
)


// scopedMatcher applies the rules of one ignore file to paths beneath the
// directory that holds it.
type scopedMatcher struct {
	directory string
	parser    *gitignore.GitIgnore
}

func (matcher scopedMatcher) matches(path string, isDirectory bool) bool {
	relativePath, relativeError := filepath.Rel(matcher.directory, path)
	if relativeError != nil {
		return false
	}
	relativePath = filepath.ToSlash(relativePath)
	if matcher.parser.MatchesPath(relativePath) {
		return true
	}
	return isDirectory && matcher.parser.MatchesPath(relativePath+"/")
}

// insideRepository reports whether directoryPath or one of its parents holds a
// Git repository marker.
func insideRepository(directoryPath string) bool {
	for currentPath := filepath.Clean(directoryPath); ; {
		if _, statError := os.Lstat(filepath.Join(currentPath, RepositoryMarkerName)); statError == nil {
			return true
		}
		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return false
		}
		currentPath = parentPath
	}
}

// loadDirectoryMatchers compiles the ignore files found directly in
// directoryPath. Git ignore files only count inside a repository.
func loadDirectoryMatchers(directoryPath string, inRepository bool) ([]scopedMatcher, error) {
	ignoreFileNames := []string{IgnoreFileName}
	if inRepository {
		ignoreFileNames = []string{GitIgnoreFileName, IgnoreFileName}
	}
	var matchers []scopedMatcher
	for _, ignoreFileName := range ignoreFileNames {
		ignoreFilePath := filepath.Join(directoryPath, ignoreFileName)
		fileInfo, statError := os.Stat(ignoreFilePath)
		if statError != nil || fileInfo.IsDir() {
			continue
		}
		parser, compileError := gitignore.CompileIgnoreFile(ignoreFilePath)
		if compileError != nil {
			return nil, fmt.Errorf(errorCompileIgnoreFileFormat, ignoreFilePath, compileError)
		}
		matchers = append(matchers, scopedMatcher{directory: directoryPath, parser: parser})
	}
	return matchers, nil
}

// isIgnored reports whether any inherited matcher excludes path.
func isIgnored(matchers []scopedMatcher, path string, isDirectory bool) bool {
	for _, matcher := range matchers {
		if matcher.matches(path, isDirectory) {
			return true
		}
	}
	return false
}

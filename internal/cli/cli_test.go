package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/render"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

type recordingCopier struct {
	copied []string
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return nil
}

type commandFixture struct {
	workingDirectory string
	homeDirectory    string
	scanDirectory    string
	copier           *recordingCopier
}

func newCommandFixture(t *testing.T) commandFixture {
	t.Helper()
	fixture := commandFixture{
		workingDirectory: t.TempDir(),
		homeDirectory:    t.TempDir(),
		scanDirectory:    t.TempDir(),
		copier:           &recordingCopier{},
	}
	files := map[string]int{
		"small.txt":      10,
		"large.bin":      2048,
		"nested/mid.dat": 300,
	}
	for relativePath, size := range files {
		absolutePath := filepath.Join(fixture.scanDirectory, relativePath)
		require.NoError(t, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
		require.NoError(t, os.WriteFile(absolutePath, bytes.Repeat([]byte("x"), size), 0o644))
	}
	return fixture
}

func (fixture commandFixture) run(arguments ...string) (string, error) {
	var stdout bytes.Buffer
	command := NewRootCommand(Dependencies{
		Stdout:           &stdout,
		Stderr:           &bytes.Buffer{},
		Copier:           fixture.copier,
		WorkingDirectory: fixture.workingDirectory,
		HomeDirectory:    fixture.homeDirectory,
	})
	command.SetArgs(normalizeBooleanFlagArguments(command, arguments))
	executeError := command.Execute()
	return stdout.String(), executeError
}

func TestRootCommandRendersTree(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	output, runError := fixture.run(fixture.scanDirectory)
	require.NoError(t, runError)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "2358 B")
	assert.Contains(t, lines[1], "├── large.bin")
	assert.Contains(t, lines[2], "├── nested")
	assert.Contains(t, lines[4], "└── small.txt")
	assert.Equal(t, "1 directory, 3 files", lines[len(lines)-1])
	assert.NotContains(t, output, "\x1b[", "colors are disabled for non-terminal output")
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		arguments         []string
		expectedFragments []string
		absentFragments   []string
	}{
		{
			name:              "human_readable_binary",
			arguments:         []string{"-h"},
			expectedFragments: []string{"2.00 KiB ├── large.bin", "10 B"},
		},
		{
			name:              "human_readable_si",
			arguments:         []string{"--human", "--unit=si"},
			expectedFragments: []string{"2.05 KB"},
		},
		{
			name:              "reverse_size_sort",
			arguments:         []string{"-s", "rsize"},
			expectedFragments: []string{"├── large.bin\n", "└── small.txt\n"},
		},
		{
			name:              "glob_pattern_prunes",
			arguments:         []string{"--glob", "-p", "*.txt"},
			expectedFragments: []string{"└── small.txt", "0 directories, 1 file"},
			absentFragments:   []string{"nested", "large.bin"},
		},
		{
			name:              "dirs_only",
			arguments:         []string{"--dirs-only"},
			expectedFragments: []string{"└── nested"},
			absentFragments:   []string{"small.txt"},
		},
		{
			name:              "level_limit",
			arguments:         []string{"-L", "1"},
			expectedFragments: []string{"├── nested"},
			absentFragments:   []string{"mid.dat"},
		},
		{
			name:              "boolean_literal_value",
			arguments:         []string{"--prune", "yes", "--hidden=off"},
			expectedFragments: []string{"mid.dat"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			fixture := newCommandFixture(t)
			output, runError := fixture.run(append(testCase.arguments, fixture.scanDirectory)...)
			require.NoError(t, runError)
			for _, fragment := range testCase.expectedFragments {
				assert.Contains(t, output, fragment)
			}
			for _, fragment := range testCase.absentFragments {
				assert.NotContains(t, output, fragment)
			}
		})
	}
}

func TestRootCommandLayersConfiguration(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	globalPath := filepath.Join(fixture.homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte("tree:\n  format: json\n  human: true\n"), 0o600))

	jsonOutput, runError := fixture.run(fixture.scanDirectory)
	require.NoError(t, runError)
	var document render.JSONDocument
	require.NoError(t, json.Unmarshal([]byte(jsonOutput), &document))
	assert.Equal(t, int64(2358), document.Root.Size)
	assert.Equal(t, "2.30 KiB", document.Root.Display)

	localPath := filepath.Join(fixture.workingDirectory, utils.ConfigFileName)
	require.NoError(t, os.WriteFile(localPath, []byte("tree:\n  human: false\n"), 0o600))
	localOutput, runError := fixture.run(fixture.scanDirectory)
	require.NoError(t, runError)
	require.NoError(t, json.Unmarshal([]byte(localOutput), &document))
	assert.Equal(t, "2358 B", document.Root.Display)

	flagOutput, runError := fixture.run("--format=tree", fixture.scanDirectory)
	require.NoError(t, runError)
	assert.Contains(t, flagOutput, "2358 B ")
	assert.Contains(t, flagOutput, "└── small.txt")
}

func TestRootCommandExplicitConfiguration(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	explicitPath := filepath.Join(fixture.workingDirectory, "custom.yaml")
	require.NoError(t, os.WriteFile(explicitPath, []byte("tree:\n  dirs_only: true\n"), 0o600))

	output, runError := fixture.run("--config", explicitPath, fixture.scanDirectory)
	require.NoError(t, runError)
	assert.NotContains(t, output, "small.txt")
	assert.Contains(t, output, "nested")
}

func TestRootCommandErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		arguments func(fixture commandFixture) []string
		expected  error
	}{
		{
			name:      "invalid_sort",
			arguments: func(fixture commandFixture) []string { return []string{"--sort=largest", fixture.scanDirectory} },
			expected:  config.ErrInvalidSort,
		},
		{
			name:      "missing_directory",
			arguments: func(fixture commandFixture) []string { return []string{filepath.Join(fixture.scanDirectory, "absent")} },
			expected:  tree.ErrDirNotFound,
		},
		{
			name:      "invalid_regex",
			arguments: func(fixture commandFixture) []string { return []string{"-p", "[", fixture.scanDirectory} },
			expected:  config.ErrInvalidRegularExpression,
		},
		{
			name:      "conflicting_globs",
			arguments: func(fixture commandFixture) []string { return []string{"--glob", "--iglob", "-p", "*", fixture.scanDirectory} },
			expected:  config.ErrConflictingPatternFlavors,
		},
		{
			name:      "no_matches",
			arguments: func(fixture commandFixture) []string { return []string{"-p", "^nothing$", fixture.scanDirectory} },
			expected:  tree.ErrNoMatches,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			fixture := newCommandFixture(t)
			_, runError := fixture.run(testCase.arguments(fixture)...)
			assert.ErrorIs(t, runError, testCase.expected)
		})
	}
}

func TestRootCommandCopiesToClipboard(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	output, runError := fixture.run("--clipboard", fixture.scanDirectory)
	require.NoError(t, runError)
	require.Len(t, fixture.copier.copied, 1)
	assert.Equal(t, output, fixture.copier.copied[0])
}

func TestRootCommandPrintsVersion(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	output, runError := fixture.run("--version")
	require.NoError(t, runError)
	assert.True(t, strings.HasPrefix(output, utils.ApplicationName+" version: "))
}

func TestInitCommandWritesConfiguration(t *testing.T) {
	t.Parallel()

	fixture := newCommandFixture(t)
	output, runError := fixture.run("init")
	require.NoError(t, runError)
	localPath := filepath.Join(fixture.workingDirectory, utils.ConfigFileName)
	assert.Contains(t, output, localPath)
	assert.FileExists(t, localPath)

	_, repeatError := fixture.run("init")
	assert.Error(t, repeatError)

	_, forceError := fixture.run("init", "--force")
	assert.NoError(t, forceError)

	_, globalError := fixture.run("init", "--global")
	require.NoError(t, globalError)
	assert.FileExists(t, filepath.Join(fixture.homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName))

	treeOutput, runError := fixture.run(fixture.scanDirectory)
	require.NoError(t, runError)
	assert.Contains(t, treeOutput, "└── small.txt")
}

package utils

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFromBuildInfo(t *testing.T) {
	testCases := []struct {
		name     string
		info     debug.BuildInfo
		expected string
	}{
		{
			name:     "tagged_module",
			info:     debug.BuildInfo{Main: debug.Module{Version: "v0.4.1"}},
			expected: "v0.4.1",
		},
		{
			name: "clean_revision",
			info: debug.BuildInfo{
				Main:     debug.Module{Version: develVersion},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
			},
			expected: "(devel) 0123456789ab",
		},
		{
			name: "modified_revision",
			info: debug.BuildInfo{
				Main: debug.Module{Version: develVersion},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			expected: "(devel) abc123-dirty",
		},
		{
			name:     "nothing_stamped",
			info:     debug.BuildInfo{Main: debug.Module{Version: develVersion}},
			expected: unknownVersion,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, versionFromBuildInfo(&testCase.info))
		})
	}
}

func TestApplicationVersionPrefersLinkedValue(t *testing.T) {
	previous := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = previous })

	assert.Equal(t, "v9.9.9", ApplicationVersion())
}

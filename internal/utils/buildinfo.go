// Package utils holds application constants, the logger constructor and version lookup.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion = "unknown"
	develVersion   = "(devel)"

	revisionSettingKey = "vcs.revision"
	modifiedSettingKey = "vcs.modified"
	shortRevisionWidth = 12
	dirtyVersionSuffix = "-dirty"
)

// Version is injected at link time with -ldflags "-X .../utils.Version=v1.2.3".
var Version string

// ApplicationVersion reports the linked version when one was injected and falls
// back to the build information embedded by the Go toolchain.
func ApplicationVersion() string {
	if Version != "" {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	return versionFromBuildInfo(buildInfo)
}

// versionFromBuildInfo prefers a tagged module version, then the VCS revision
// stamped into development builds.
func versionFromBuildInfo(buildInfo *debug.BuildInfo) string {
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	var revision string
	var modified bool
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionWidth {
		revision = revision[:shortRevisionWidth]
	}
	if modified {
		revision += dirtyVersionSuffix
	}
	return develVersion + " " + revision
}

// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package gporeport

// Version is set via ldflags at build time
var Version string

// Build version is set via ldflags at build time
var Build string

// GetVersion returns the version of the tool
func GetVersion() string {
	if Version == "" {
		return "unstable"
	}
	return Version
}

// GetBuild returns the build of the tool
func GetBuild() string {
	if Build == "" {
		return "development"
	}
	return Build
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// BuildInfo is the release stamp the linker writes into the agromatch
// binaries. Missing values read as "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Linked reports whether a release version was stamped at link time.
func (b BuildInfo) Linked() bool {
	return b.Version != "" && b.Version != notAvailable
}

// ShortCommit returns the first seven characters of the commit hash.
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) > 7 && b.Commit != notAvailable {
		return b.Commit[:7]
	}
	return b.Commit
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("agromatch %s (commit %s, built %s)", orNotAvailable(b.Version), orNotAvailable(b.ShortCommit()), orNotAvailable(b.Date))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

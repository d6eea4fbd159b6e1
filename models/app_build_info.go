// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

// NotAvailable stands in for build values that were not stamped by -ldflags.
const NotAvailable = "N/A"

// AppBuildInfo identifies a cadet-sync binary. The three values are set at
// link time; a local `go build` leaves them empty.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// WithDefaults returns a copy where every empty value is replaced by
// NotAvailable.
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(a.version),
		date:    orNotAvailable(a.date),
		commit:  orNotAvailable(a.commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// Print writes the build values to w, one per line.
func (a AppBuildInfo) Print(w io.Writer) {
	d := a.WithDefaults()
	fmt.Fprintf(w, "Build version: %s\n", d.version)
	fmt.Fprintf(w, "Build date: %s\n", d.date)
	fmt.Fprintf(w, "Build commit: %s\n", d.commit)
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

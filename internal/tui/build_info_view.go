// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/cadet-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	info = info.WithDefaults()
	body := fmt.Sprintf("Application : cadet-sync\nVersion : %s\nDate : %s\nCommit : %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())

	return renderPage("À PROPOS", body, "esc : retour")
}

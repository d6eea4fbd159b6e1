package tui

import (
	"time"

	"github.com/MKhiriev/cadet-sync/models"
)

type tickMsg time.Time

type syncDoneMsg struct {
	result models.SyncResult
}

type cacheRefreshedMsg struct {
	err error
}

type cacheLoadedMsg struct {
	snapshot *models.CacheSnapshot
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}

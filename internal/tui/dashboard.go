// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/models"
)

const (
	pollInterval   = 500 * time.Millisecond
	statusDuration = 3 * time.Second
)

type dashboardModel struct {
	ctx        context.Context
	controller service.ClientController
	cache      service.ClientCacheService
	buildInfo  models.AppBuildInfo

	help    help.Model
	spinner spinner.Model

	state    models.ControllerState
	snapshot *models.CacheSnapshot

	syncing    bool
	refreshing bool

	status    string
	statusSeq int
	overlay   *errorOverlayModel

	showDetails   bool
	showBuildInfo bool

	copyFn func(string) error
}

func newDashboardModel(ctx context.Context, controller service.ClientController, cache service.ClientCacheService, buildInfo models.AppBuildInfo) dashboardModel {
	return dashboardModel{
		ctx:        ctx,
		controller: controller,
		cache:      cache,
		buildInfo:  buildInfo,
		help:       help.New(),
		spinner:    newSyncSpinner(),
		state:      controller.State(),
		copyFn:     clipboard.WriteAll,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadCache(), tick(), m.spinner.Tick)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.state = m.controller.State()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case syncDoneMsg:
		m.syncing = false
		m.state = m.controller.State()
		if msg.result.Message == app.MsgSessionExpired {
			m.overlay = &errorOverlayModel{message: app.MsgSessionExpired}
			return m, nil
		}
		return m.setStatus(msg.result.Message)

	case cacheRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: service.UserMessage(msg.err)}
			return m, nil
		}
		next, cmd := m.setStatus("cache mis à jour")
		return next, tea.Batch(cmd, m.cmdLoadCache())

	case cacheLoadedMsg:
		if msg.err == nil {
			m.snapshot = msg.snapshot
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "copie impossible : " + msg.err.Error()}
			return m, nil
		}
		return m.setStatus("rapport copié dans le presse-papiers")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil || m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.overlay = nil
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m.setStatus(app.MsgAlreadySyncing)
		}
		m.syncing = true
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)

	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefreshCache()

	case key.Matches(msg, keys.details):
		m.showDetails = !m.showDetails
		return m, nil

	case key.Matches(msg, keys.copy):
		if m.state.LastResult == nil {
			return m.setStatus("aucun rapport à copier")
		}
		return m, m.cmdCopy(formatReport(*m.state.LastResult))

	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.esc):
		m.showDetails = false
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder

	if m.state.IsOnline {
		b.WriteString("Connexion : " + onlineStyle.Render("en ligne") + "\n")
	} else {
		b.WriteString("Connexion : " + offlineStyle.Render("hors ligne") + "\n")
	}

	fmt.Fprintf(&b, "File d'attente : %d élément(s) en attente\n", m.state.SyncQueueCount)

	switch {
	case m.syncing || m.state.IsSyncing:
		b.WriteString("Synchronisation : " + m.spinner.View() + " en cours\n")
	default:
		b.WriteString("Synchronisation : inactive\n")
	}

	b.WriteString("Cache : " + m.cacheLine() + "\n")
	b.WriteString("Dernier rapport : " + formatSummary(m.state.LastResult) + "\n")

	if m.showDetails && m.state.LastResult != nil {
		details := m.state.LastResult.ErrorDetails
		if len(details) == 0 {
			b.WriteString("\n  aucune erreur\n")
		} else {
			b.WriteString("\n")
			for _, d := range details {
				b.WriteString("  - " + fitText(formatErrorDetail(d), 70) + "\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	page := renderPage("CADET-SYNC : ÉTAT HORS LIGNE", strings.TrimRight(b.String(), "\n"), helpStyle.Render(m.help.View(keys)))
	return appStyle.Render(page)
}

func (m dashboardModel) cacheLine() string {
	line := "mis à jour " + formatTimestamp(m.state.CacheTimestamp)
	if m.refreshing {
		line += " (rafraîchissement...)"
	}
	if m.snapshot != nil {
		line += fmt.Sprintf(" : %d utilisateurs, %d sections, %d activités",
			len(m.snapshot.Users), len(m.snapshot.Sections), len(m.snapshot.Activities))
	}
	return line
}

func (m dashboardModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m dashboardModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{result: m.controller.HandleManualSync(m.ctx)}
	}
}

func (m dashboardModel) cmdRefreshCache() tea.Cmd {
	return func() tea.Msg {
		return cacheRefreshedMsg{err: m.controller.RefreshCache(m.ctx)}
	}
}

func (m dashboardModel) cmdLoadCache() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.cache.GetCacheData(m.ctx)
		return cacheLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

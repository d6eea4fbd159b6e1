package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/cadet-sync/models"
)

// formatReport renders a sync result as plain text for the clipboard.
func formatReport(r models.SyncResult) string {
	var b strings.Builder

	b.WriteString("Rapport de synchronisation\n")
	fmt.Fprintf(&b, "Résultat : %s\n", valueOrDash(r.Message))
	fmt.Fprintf(&b, "Envoyés : %d\n", r.Synced)
	fmt.Fprintf(&b, "Erreurs : %d\n", r.Errors)
	fmt.Fprintf(&b, "En attente : %d\n", r.Retained)
	if r.Flagged > 0 {
		fmt.Fprintf(&b, "Signalés : %d\n", r.Flagged)
	}

	if len(r.ErrorDetails) > 0 {
		b.WriteString("\nDétails :\n")
		for _, d := range r.ErrorDetails {
			b.WriteString("- ")
			b.WriteString(formatErrorDetail(d))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatErrorDetail(d models.ErrorDetail) string {
	kind := "présence"
	if d.Type == models.ItemTypeInspection {
		kind = "inspection"
	}

	line := fmt.Sprintf("%s, cadet %s", kind, d.CadetID)
	if d.StatusCode > 0 {
		line += fmt.Sprintf(", HTTP %d", d.StatusCode)
	}
	return line + " : " + valueOrDash(d.Message)
}

func formatSummary(r *models.SyncResult) string {
	if r == nil {
		return "aucune synchronisation"
	}
	return fmt.Sprintf("%s (envoyés %d, erreurs %d, en attente %d)", valueOrDash(r.Message), r.Synced, r.Errors, r.Retained)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

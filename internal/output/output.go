// Package output renders sync reports for the terminal using lipgloss.
package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fund_sync/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	indicatorStyles = map[domain.Indicator]lipgloss.Style{
		domain.IndicatorSynced:    successStyle,
		domain.IndicatorPending:   warningStyle,
		domain.IndicatorError:     errorStyle,
		domain.IndicatorManual:    errorStyle.Bold(true),
		domain.IndicatorNotLinked: subtleStyle,
	}

	indicatorLabels = map[domain.Indicator]string{
		domain.IndicatorSynced:    "synced",
		domain.IndicatorPending:   "pending",
		domain.IndicatorError:     "error",
		domain.IndicatorManual:    "manual intervention",
		domain.IndicatorNotLinked: "not linked",
	}
)

const maxErrorWidth = 48

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

func FormatIndicator(i domain.Indicator) string {
	label, ok := indicatorLabels[i]
	if !ok {
		label = string(i)
	}
	style, ok := indicatorStyles[i]
	if !ok {
		return label
	}
	return style.Render(label)
}

func FormatTemplateStatus(name string, status domain.TemplateStatus) string {
	switch status {
	case domain.TemplateValid:
		return successStyle.Render("valid") + " " + subtleStyle.Render(name)
	case domain.TemplatePending:
		return warningStyle.Render("pending re-check")
	case domain.TemplateInvalid:
		return errorStyle.Render("invalid")
	default:
		return subtleStyle.Render("not configured")
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// StatusTable prints one row per fund. The styled indicator is the last
// column so escape sequences do not disturb alignment.
func StatusTable(w io.Writer, report *domain.StatusReport) error {
	fmt.Fprintln(w, titleStyle.Render("Fund sync status"))
	fmt.Fprintf(w, "Last pass: %s\n", formatTime(report.LastPollAt))
	fmt.Fprintf(w, "Template:  %s\n\n", FormatTemplateStatus(report.TemplateName, report.TemplateStatus))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESIGNATION\tCAMPAIGN\tLAST SYNC\tATTEMPTS\tERROR\tSTATUS")
	for _, row := range report.Rows {
		f := row.Fund
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			f.ID,
			clip(f.Title, 40),
			orDash(f.Sync.DesignationID),
			orDash(f.Sync.CampaignID),
			formatTime(f.Sync.LastSyncAt),
			f.Sync.SyncAttempts,
			orDash(clip(f.Sync.SyncError, maxErrorWidth)),
			FormatIndicator(row.Indicator),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write status table: %w", err)
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d funds, %d with errors, %d need manual intervention", len(report.Rows), report.Errors, report.Manual)
	if report.Manual > 0 {
		fmt.Fprintln(w, errorStyle.Render(summary))
	} else if report.Errors > 0 {
		fmt.Fprintln(w, warningStyle.Render(summary))
	} else {
		fmt.Fprintln(w, successStyle.Render(summary))
	}
	return nil
}

func ConflictTable(w io.Writer, entries []domain.ConflictEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("No conflicts recorded."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tFUND\tDESIGNATION\tLOCAL TITLE\tREMOTE TITLE\tREASON")
	for _, e := range entries {
		at := e.Timestamp
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			formatTime(&at),
			e.FundID,
			e.DesignationID,
			clip(e.LocalTitle, 40),
			clip(e.RemoteTitle, 40),
			e.Reason,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write conflict table: %w", err)
	}
	return nil
}

func PassSummary(w io.Writer, stats *domain.PassStats) {
	heading := "Reconciliation pass complete"
	if stats.DryRun {
		heading += " (dry run, nothing written)"
	}
	fmt.Fprintln(w, titleStyle.Render(heading))

	rows := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"processed", stats.Processed, lipgloss.NewStyle()},
		{"updated", stats.Updated, successStyle},
		{"skipped", stats.Skipped, subtleStyle},
		{"  unchanged", stats.Unchanged, subtleStyle},
		{"  conflicts", stats.Conflicts, warningStyle},
		{"  deferred", stats.Deferred, warningStyle},
		{"orphaned", stats.Orphaned, warningStyle},
		{"ambiguous", stats.Ambiguous, warningStyle},
		{"retried", stats.Retried, lipgloss.NewStyle()},
		{"errors", stats.Errors, errorStyle},
	}
	for _, r := range rows {
		value := strconv.Itoa(r.value)
		if r.value > 0 {
			value = r.style.Render(value)
		}
		fmt.Fprintf(w, "  %-12s %s\n", r.label, value)
	}
	fmt.Fprintf(w, "  %-12s %s\n", "duration", stats.Duration.Round(time.Millisecond))
}

func PushSummary(w io.Writer, stats *domain.PushStats) {
	heading := "Push complete"
	if stats.DryRun {
		heading += " (dry run, nothing written)"
	}
	fmt.Fprintln(w, titleStyle.Render(heading))
	fmt.Fprintf(w, "  considered %d, created %d, updated %d, skipped %d, errors %d\n",
		stats.Considered, stats.Created, stats.Updated, stats.Skipped, stats.Errors)
}

func RetrySummary(w io.Writer, stats *domain.RetryStats) {
	fmt.Fprintln(w, titleStyle.Render("Retry complete"))
	if stats.Errored == 0 {
		fmt.Fprintln(w, successStyle.Render("  no funds in error state"))
		return
	}
	fmt.Fprintf(w, "  errored %d, cleared %d, retried %d, succeeded %d, failed %d, not due %d\n",
		stats.Errored, stats.Cleared, stats.Retried, stats.Succeeded, stats.Failed, stats.Skipped)
}

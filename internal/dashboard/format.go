package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/salesops/salesdesk/pkg/models"
)

// FormatCurrency renders an amount as rupees with thousands separators and
// no decimal places, e.g. 120000 -> "₹120,000".
func FormatCurrency(amount float64) string {
	return "₹" + humanize.Comma(int64(math.Round(amount)))
}

// FormatValue renders an optional project value. A missing value renders as
// the "N/A" sentinel, which is distinct from a reported zero.
func FormatValue(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return FormatCurrency(*value)
}

// FormatStatus upper-cases a status for display. Any string is accepted;
// the client never checks membership in an enum.
func FormatStatus(status string) string {
	return strings.ToUpper(status)
}

// RenderStatistics renders the headline metrics as plain text, one per line.
func RenderStatistics(stats models.Statistics) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Projects:   %d\n", stats.TotalProjects)
	fmt.Fprintf(&sb, "Active Projects:  %d\n", stats.ActiveProjects)
	fmt.Fprintf(&sb, "Total Revenue:    %s\n", FormatCurrency(stats.TotalRevenue))
	fmt.Fprintf(&sb, "Pending Payments: %d\n", stats.PendingPaymentsCount)
	return sb.String()
}

// RenderProjects renders the project table as plain text. An empty project
// list renders an explicit empty state, never an empty table.
func RenderProjects(projects []models.ProjectSummary) string {
	if len(projects) == 0 {
		return "No projects found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-24s %-18s %-12s %s\n", "PROJECT", "CLIENT", "STATUS", "VALUE")
	for _, p := range projects {
		fmt.Fprintf(&sb, "%-24s %-18s %-12s %s\n",
			truncate(p.Name, 24),
			truncate(p.Client, 18),
			truncate(FormatStatus(p.Status), 12),
			FormatValue(p.EstimatedValue))
	}
	return sb.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

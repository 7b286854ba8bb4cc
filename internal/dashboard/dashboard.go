// Package dashboard fetches and shapes role-specific dashboard snapshots.
// A snapshot is always a fresh read: nothing here caches or invalidates.
package dashboard

import (
	"context"
	"fmt"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/pkg/models"
)

// FetchManagerView issues one backend call for a manager's dashboard.
func FetchManagerView(ctx context.Context, client *api.Client, managerID int) (*models.DashboardSnapshot, error) {
	return snapshot(client.ManagerDashboard(ctx, managerID))
}

// FetchExecutiveView issues one backend call for an executive's dashboard.
func FetchExecutiveView(ctx context.Context, client *api.Client, executiveID int) (*models.DashboardSnapshot, error) {
	return snapshot(client.ExecutiveDashboard(ctx, executiveID))
}

// FetchForRole routes to the manager or executive variant of the dashboard.
func FetchForRole(ctx context.Context, client *api.Client, role models.Role, userID int) (*models.DashboardSnapshot, error) {
	if role == models.RoleManager {
		return FetchManagerView(ctx, client, userID)
	}
	return FetchExecutiveView(ctx, client, userID)
}

// snapshot shapes a raw dashboard payload. A failed call is terminal for the
// render pass: the caller gets an error and no partial data.
func snapshot(res api.Result) (*models.DashboardSnapshot, error) {
	if !res.Success() {
		return nil, fmt.Errorf("loading dashboard: %s", res.ErrorMessage())
	}

	stats := res.Map("statistics")
	snap := &models.DashboardSnapshot{
		Statistics: models.Statistics{
			TotalProjects:        stats.Int("total_projects"),
			ActiveProjects:       stats.Int("active_projects"),
			TotalRevenue:         stats.Num("total_revenue"),
			PendingPaymentsCount: stats.Int("pending_payments_count"),
		},
	}

	for _, p := range res.List("projects") {
		project := models.ProjectSummary{
			Name:   p.Str("name", "N/A"),
			Client: p.Str("client", "N/A"),
			Status: p.Str("status", "N/A"),
		}
		// A JSON null counts as missing, not as zero.
		if value, ok := p["estimated_value"].(float64); ok {
			project.EstimatedValue = &value
		}
		snap.Projects = append(snap.Projects, project)
	}

	return snap, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesops/salesdesk/internal/dashboard"
	"github.com/salesops/salesdesk/pkg/models"
)

var (
	showUserID int
	showRole   string
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [users|dashboard]",
		Short: "Show users or a dashboard without the TUI",
		Long: `Show backend data in a non-interactive format.
'show users' lists all users.
'show dashboard' prints the dashboard for a user (see --id and --role).`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	showCmd.Flags().IntVar(&showUserID, "id", 1, "User id to show the dashboard for")
	showCmd.Flags().StringVar(&showRole, "role", "manager", "Dashboard variant: manager or executive")

	return showCmd
}

func runShow(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "users":
		return showUsers()
	case "dashboard":
		return showDashboard()
	default:
		return fmt.Errorf("unknown argument %q. Usage: salesdesk show [users|dashboard]", args[0])
	}
}

func showUsers() error {
	client := newClient()

	users, err := client.Users(context.Background())
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	fmt.Println("Users:")
	fmt.Println("======")
	for _, user := range users {
		fmt.Printf("%d. %s (%s)\n", user.ID, user.Name, user.Role)
	}
	return nil
}

func showDashboard() error {
	client := newClient()

	snapshot, err := dashboard.FetchForRole(context.Background(), client, models.Role(showRole), showUserID)
	if err != nil {
		return err
	}

	fmt.Printf("Dashboard for user %d (%s) via %s:\n", showUserID, showRole, client.BaseURL())
	fmt.Println("===========================")
	fmt.Println(dashboard.RenderStatistics(snapshot.Statistics))
	fmt.Println(dashboard.RenderProjects(snapshot.Projects))
	return nil
}

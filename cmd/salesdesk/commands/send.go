package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/salesops/salesdesk/internal/tui"
	"github.com/salesops/salesdesk/pkg/models"
)

var sendUserID int

// NewSendCommand creates the send command
func NewSendCommand() *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Submit one natural-language command and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSend,
	}

	sendCmd.Flags().IntVar(&sendUserID, "user", 1, "User id to submit the command as")

	return sendCmd
}

func runSend(cmd *cobra.Command, args []string) error {
	client := newClient()
	message := strings.Join(args, " ")

	outcome := client.SendMessage(context.Background(), message, sendUserID)

	record := models.CommandRecord{
		ID:          uuid.New().String(),
		RawText:     message,
		SubmittedAt: time.Now(),
		Parsed:      outcome.Parsed,
		Execution:   outcome.Execution,
	}
	if !outcome.Success {
		record.Execution = &models.ExecutionResult{Success: false, Error: outcome.Error}
	}

	fmt.Printf("Message: %s\n", message)
	fmt.Println("==========================================")
	fmt.Print(tui.RenderRecord(record))
	return nil
}

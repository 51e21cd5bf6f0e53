package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

const dateLayout = "2006-01-02"

var eventsCmd = &cobra.Command{
	Use:     "events",
	Aliases: []string{"e"},
	Short:   "List events open for registration",
	Example: `  # List open events
  icmt events

  # List the participants of one event
  icmt events participants 3f9b2b0e-8d4c-4f3e-9a63-2d2f1c0c6a11`,
	Run: func(cmd *cobra.Command, _ []string) {
		_, client := mustClient()

		ctx, cancel := signalContext()
		defer cancel()

		events, err := client.Events(ctx)
		if err != nil {
			log.Debug("Events error: %v", err)
			log.Fatal(errorText(err, api.MsgEventsFailed))
		}
		saveSession(client)

		if len(events) == 0 {
			log.Info("No events are open for registration")
			return
		}
		for _, ev := range events {
			printEvent(cmd.OutOrStdout(), ev)
		}
	},
}

var participantsCmd = &cobra.Command{
	Use:   "participants <event-id>",
	Short: "List the participants registered for an event",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eventID, err := parseEventID(args[0])
		if err != nil {
			log.Fatal(err)
		}

		_, client := mustClient()

		ctx, cancel := signalContext()
		defer cancel()

		participants, err := client.Participants(ctx, eventID)
		if err != nil {
			log.Debug("Participants error: %v", err)
			log.Fatal(errorText(err, api.MsgParticipantsFailed))
		}
		saveSession(client)

		if len(participants) == 0 {
			log.Info("No participants registered for %s", eventID)
			return
		}
		for _, p := range participants {
			printParticipant(cmd.OutOrStdout(), p)
		}
		log.Info("%d participant(s)", len(participants))
	},
}

func formatEvent(ev api.Event) string {
	var b strings.Builder
	b.WriteString(page.EventLabel(ev))

	switch {
	case ev.StartDate != nil && ev.EndDate != nil:
		fmt.Fprintf(&b, " (%s to %s)", ev.StartDate.Format(dateLayout), ev.EndDate.Format(dateLayout))
	case ev.StartDate != nil:
		fmt.Fprintf(&b, " (%s)", ev.StartDate.Format(dateLayout))
	}
	if !ev.RegistrationOpen {
		b.WriteString(" [closed]")
	}
	return b.String()
}

func printEvent(w io.Writer, ev api.Event) {
	_, _ = fmt.Fprintf(w, "%s  %s\n", ev.ID, formatEvent(ev))
	if ev.Description != nil && *ev.Description != "" {
		_, _ = fmt.Fprintf(w, "    %s\n", *ev.Description)
	}
}

func printParticipant(w io.Writer, p api.Participant) {
	_, _ = fmt.Fprintf(w, "%s %s <%s>  %s  Division %s  %s  %d\n",
		p.FirstName, p.LastName, p.Email, p.University, p.Division, p.TShirtSize, p.ExpectedGraduationYear)
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(participantsCmd)
}

package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arenadash/internal/application"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleRefresh(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	snap, err := b.dashboard.Refresh(ctx)
	if err != nil {
		b.editResponse(s, i, cycleErrorMessage(err))
		return
	}

	b.editResponse(s, i, fmt.Sprintf("Synced %d games. %d own submissions, %d opponents.",
		len(snap.Games), len(snap.Roster.OurIDs), len(snap.Opponents)))
}

func (b *Bot) handleRunMissing(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	snap, err := b.dashboard.RunMissing(ctx)
	if err != nil {
		b.editResponse(s, i, cycleErrorMessage(err))
		return
	}

	if len(snap.Triggered) == 0 {
		b.editResponse(s, i, "Nothing to do, every pair has a run already.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Triggered %d missing runs:\n", len(snap.Triggered)))
	for _, run := range snap.Triggered {
		sb.WriteString(fmt.Sprintf("`%d vs %d` (%s)\n", run.AttackerID, run.DefenderID, run.Role))
		if sb.Len() > maxMessageTruncation {
			sb.WriteString("...\n(list truncated)")
			break
		}
	}
	b.editResponse(s, i, sb.String())
}

func (b *Bot) handleOpponents(s *discordgo.Session, i *discordgo.Interaction) {
	snap := b.dashboard.Current()
	if snap == nil {
		b.respondMessage(s, i, "No data yet, run /refresh first.", true)
		return
	}

	var sb strings.Builder
	sb.WriteString("Current top opponents:\n\n")
	for idx, opp := range snap.Opponents {
		sb.WriteString(fmt.Sprintf("`%2d.` **%s** (%d)\n", idx+1, opp.TeamName, opp.SubmissionID))
	}

	msg := sb.String()
	if len(msg) > maxMessageLength {
		msg = msg[:maxMessageTruncation] + "...\n(list truncated)"
	}
	b.respondMessage(s, i, msg, false)
}

func (b *Bot) handleReport(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	data, err := b.dashboard.ExcelReport(ctx)
	if err != nil {
		b.logger.Error("report export failed", "error", err.Error())
		b.editResponse(s, i, cycleErrorMessage(err))
		return
	}

	content := "Here is the current grid."
	s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{
			{Name: "results.xlsx", Reader: bytes.NewReader(data)},
		},
	})
}

func cycleErrorMessage(err error) string {
	if errors.Is(err, application.ErrCycleInFlight) {
		return "A cycle is already running, try again in a moment."
	}
	return "Cycle failed: " + err.Error()
}

const cycleTimeout = 2 * time.Minute

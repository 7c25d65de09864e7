package discord

import (
	"context"
	"strings"

	"arenadash/internal/application"
	"arenadash/pkg/config"

	"github.com/bwmarrin/discordgo"
)

// Bot is the chat surface of the dashboard: the same refresh / run-missing
// triggers the old web buttons offered, plus the grid as an xlsx attachment.
type Bot struct {
	session   *discordgo.Session
	dashboard application.DashboardService
	logger    application.Logger

	adminIDs         map[string]struct{}
	allowedChannelID string
}

func NewBot(cfg *config.Config, services *application.Service, logger application.Logger) *Bot {
	s, _ := discordgo.New("Bot " + cfg.DiscordToken)

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	return &Bot{
		session:          s,
		dashboard:        services.Dashboard,
		logger:           logger,
		adminIDs:         admins,
		allowedChannelID: cfg.AllowedChannelID,
	}
}

var commands = []*discordgo.ApplicationCommand{
	{Name: "refresh", Description: "Sync the game feed and rebuild the results grid"},
	{Name: "run_missing", Description: "Trigger every pair that has never been run (admins only)"},
	{Name: "opponents", Description: "Show the current top opponents"},
	{Name: "report", Description: "Export the results grid as xlsx"},
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session", "error", err.Error())
		return
	}

	b.logger.Info("discord bot started, registering slash commands")

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", commands)
	if err != nil {
		b.logger.Error("failed to register commands", "error", err.Error())
	}

	<-ctx.Done()
}

func (b *Bot) Stop() {
	b.session.Close()
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.allowedChannelID != "" && i.ChannelID != b.allowedChannelID {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "refresh":
		b.handleRefresh(s, i.Interaction)
	case "opponents":
		b.handleOpponents(s, i.Interaction)
	case "report":
		b.handleReport(s, i.Interaction)
	case "run_missing":
		b.ensureAdmin(s, i.Interaction, b.handleRunMissing)
	}
}

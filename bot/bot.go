/* bot.go
 * Contains the Bot struct and command routing. Requires a discord bot token and APIPtr,
 * both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"clancup-bot/api/api"
)

// ChannelConfig names the channels the bot watches and writes to. An empty
// ResultsChannelID means result announcements are accepted from any channel;
// an empty UpdateChannelID disables the persistent update messages.
type ChannelConfig struct {
	ResultsChannelID      string
	RegistrationChannelID string
	UpdateChannelID       string
}

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Channels ChannelConfig
	Logger   *logrus.Logger

	// limiter throttles edits to the persistent update messages; Discord
	// rate-limits message edits well below the pace of a busy match day
	limiter *rate.Limiter
}

func NewBot(botToken string, apiPtr *api.API, channels ChannelConfig, logger *logrus.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Channels: channels,
		Logger:   logger,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 4),
	}, nil
}

// newMessageHandler routes messages to the appropriate handlers.
// botUserID is the bot's user ID to prevent self-responses. Anything that is
// not a command is treated as a potential result announcement.
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "!help"):
		b.helpHandler(session, message)

	case startsWith(message.Content, "!register"):
		b.registerHandler(session, message)

	case startsWith(message.Content, "!startgroups"):
		b.startGroupsHandler(session, message)

	case startsWith(message.Content, "!startknockout"):
		b.startKnockoutHandler(session, message)

	case startsWith(message.Content, "!standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "!teams"):
		b.teamsHandler(session, message)

	case startsWith(message.Content, "!reloadteams"):
		b.reloadTeamsHandler(session, message)

	default:
		b.resultMessageHandler(session, message)
	}
}

// Helper function to check if a string starts with a given substring
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

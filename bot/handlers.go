/* handlers.go
 * Contains testable handler methods that accept the DiscordSession interface
 */

package bot

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"clancup-bot/api/shared"
)

// helpHandler handles the !help command
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Clan Cup Bot\n")
	res.WriteString("`!register \"Team Name\" @member1 @member2 ...`: Registers a team. The first mentioned member is the captain. Names with spaces need to be enclosed in \"\n")
	res.WriteString("`!teams`: Shows the registered teams\n")
	res.WriteString("`!standings`: Shows the current group standings (group phase only)\n")
	res.WriteString("`!startgroups [rounds]`: (admin) Starts the group stage with the given number of matches per team, default 1\n")
	res.WriteString("`!startknockout [count]`: (admin) Ends the group stage early. Count is an integer, a fraction like 2/3, or a decimal like 0.5; default 2/3\n")
	res.WriteString("`!reloadteams`: (admin) Reloads the team registry from the database\n")
	res.WriteString("Match results are read automatically from the results channel. Post the announcement exactly as the game reports it.\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// registerHandler handles `!register "Team Name" @member...`. Mentioned
// members become the roster; the first mention is the captain.
func (b *Bot) registerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if b.Channels.RegistrationChannelID != "" && message.ChannelID == b.Channels.ResultsChannelID {
		session.ChannelMessageSend(message.ChannelID, "Please use the dedicated registration channel to register teams.")
		return
	}

	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: !register \"Team Name\" @member1 @member2 ...")
		return
	}
	teamName := strings.Trim(args[1], "\"“”")

	if len(message.Mentions) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Please mention at least one team member (including the captain).")
		return
	}
	members := make([]shared.Member, len(message.Mentions))
	for i, user := range message.Mentions {
		members[i] = shared.Member{ID: user.ID, Name: user.Username}
	}

	outcome, err := b.APIPtr.RegisterTeam(teamName, members)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}
	session.ChannelMessageSend(message.ChannelID, outcome.Message)
	b.publishOutcome(session, outcome)
}

// startGroupsHandler handles the admin-only !startgroups command
func (b *Bot) startGroupsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.isAdministrator(session, message) {
		session.ChannelMessageSend(message.ChannelID, "You need the administrator permission to start the group stage.")
		return
	}

	rounds := 1
	fields := strings.Fields(message.Content)
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			session.ChannelMessageSend(message.ChannelID, "Usage: !startgroups [roundsPerTeam]")
			return
		}
		rounds = n
	}

	outcome, err := b.APIPtr.StartGroupStage(rounds)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}
	session.ChannelMessageSend(message.ChannelID, outcome.Message)
	b.publishOutcome(session, outcome)
}

// startKnockoutHandler handles the admin-only !startknockout command
func (b *Bot) startKnockoutHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.isAdministrator(session, message) {
		session.ChannelMessageSend(message.ChannelID, "You need the administrator permission to start the knockout phase.")
		return
	}

	qualifySpec := "2/3"
	fields := strings.Fields(message.Content)
	if len(fields) > 1 {
		qualifySpec = fields[1]
	}

	outcome, err := b.APIPtr.StartKnockout(qualifySpec)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}
	session.ChannelMessageSend(message.ChannelID, outcome.Message)
	b.publishOutcome(session, outcome)
}

// standingsHandler handles the !standings command
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	table, err := b.APIPtr.StandingsTable()
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}
	session.ChannelMessageSend(message.ChannelID, "```"+table+"```")
}

// teamsHandler handles the !teams command
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	text, err := b.APIPtr.TeamsList()
	if err != nil {
		b.Logger.WithError(err).Error("could not build team list")
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the teams list")
		return
	}
	session.ChannelMessageSend(message.ChannelID, text)
}

// reloadTeamsHandler handles the admin-only !reloadteams command
func (b *Bot) reloadTeamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if !b.isAdministrator(session, message) {
		session.ChannelMessageSend(message.ChannelID, "You need the administrator permission to reload teams.")
		return
	}

	outcome, err := b.APIPtr.ReloadTeams()
	if err != nil {
		b.Logger.WithError(err).Error("could not reload teams")
		session.ChannelMessageSend(message.ChannelID, "An error occurred reloading the teams")
		return
	}
	session.ChannelMessageSend(message.ChannelID, outcome.Message)
	b.publishOutcome(session, outcome)
}

// resultMessageHandler runs every non-command message in the results channel
// through the report parser. Messages that are not result announcements are
// ignored; announcements the engine rejects get the rejection reply in
// channel so a report is never silently dropped.
func (b *Bot) resultMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	if b.Channels.ResultsChannelID != "" && message.ChannelID != b.Channels.ResultsChannelID {
		return
	}

	report, ok := ParseResultReport(message.Content)
	if !ok {
		return
	}

	outcome, err := b.APIPtr.HandleResultReport(report)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, err.Error())
		return
	}
	session.ChannelMessageSend(message.ChannelID, outcome.Message)
	b.publishOutcome(session, outcome)
}

// isAdministrator reports whether the message author carries the Discord
// administrator permission in the message's channel.
func (b *Bot) isAdministrator(session DiscordSession, message *discordgo.MessageCreate) bool {
	perms, err := session.UserChannelPermissions(message.Author.ID, message.ChannelID)
	if err != nil {
		b.Logger.WithError(err).Warn("could not resolve member permissions")
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}

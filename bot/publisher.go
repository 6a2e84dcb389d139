/* publisher.go
 * Contains the persistent update message publisher. Two messages in the update
 * channel are edited in place: the registered teams list and the combined
 * results/standings message. Their IDs are cached in the store so restarts
 * keep editing the same messages instead of reposting
 */

package bot

import (
	"context"

	"clancup-bot/api/api"
	"clancup-bot/api/render"
)

const (
	teamsMessageKey   = "teams_msg_id"
	resultsMessageKey = "results_msg_id"
)

// publishOutcome pushes any renderings the outcome carries into the
// persistent update messages. The state was persisted before the outcome was
// returned, so publication failures only cost freshness, never correctness.
func (b *Bot) publishOutcome(session DiscordSession, outcome *api.CommandOutcome) {
	if outcome == nil || b.Channels.UpdateChannelID == "" {
		return
	}

	if outcome.TeamsText != "" {
		b.editUpdateMessage(session, teamsMessageKey, outcome.TeamsText)
	}
	if outcome.StandingsText != "" || outcome.ScheduleText != "" || outcome.BracketText != "" {
		body := render.ResultsMessage(outcome.StandingsText, outcome.ScheduleText, outcome.BracketText)
		b.editUpdateMessage(session, resultsMessageKey, body)
	}
}

// PublishCurrent refreshes both update messages from the persisted state.
// Called once on startup so the channel reflects whatever happened while the
// bot was down.
func (b *Bot) PublishCurrent(session DiscordSession) {
	if b.Channels.UpdateChannelID == "" {
		return
	}
	outcome, err := b.APIPtr.CurrentRenderings()
	if err != nil {
		b.Logger.WithError(err).Error("could not rebuild renderings for the update channel")
		return
	}
	b.publishOutcome(session, outcome)
}

// editUpdateMessage edits the persistent message for key, creating it when no
// message exists yet or the cached one was deleted.
func (b *Bot) editUpdateMessage(session DiscordSession, key string, content string) {
	if err := b.limiter.Wait(context.Background()); err != nil {
		return
	}

	msgID, err := b.APIPtr.Store.GetUpdateMessageID(key)
	if err != nil {
		b.Logger.WithError(err).Warn("could not look up update message id")
		return
	}

	if msgID != "" {
		if _, err := session.ChannelMessageEdit(b.Channels.UpdateChannelID, msgID, content); err == nil {
			return
		}
		// the cached message may have been deleted; fall through and recreate
	}

	msg, err := session.ChannelMessageSend(b.Channels.UpdateChannelID, content)
	if err != nil {
		b.Logger.WithError(err).Warn("could not create update message")
		return
	}
	if err := b.APIPtr.Store.SetUpdateMessageID(key, msg.ID); err != nil {
		b.Logger.WithError(err).Warn("could not store update message id")
	}
}

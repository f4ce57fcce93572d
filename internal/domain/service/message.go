package service

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"

	"github.com/diegoclair/session-planner-bot/internal/domain"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

// formatSessionDate renders a date like "donderdag 17 augustus"
func formatSessionDate(t time.Time) string {
	return monday.Format(t, "Monday 2 January", monday.Locale(domain.DateLocale))
}

func reminderText(session time.Time) string {
	return fmt.Sprintf(
		"De volgende datum voor een potentiele sessie is %s.\n\nReageer even met 👍 of 👎 om aan te geven of je kan.",
		formatSessionDate(session),
	)
}

func startupText(nextReminder, nextSession time.Time) string {
	return fmt.Sprintf(
		"🤖 Session planner started. Next reminder: %s, announcing %s.",
		nextReminder.Format("Mon 2 Jan 15:04 MST"),
		formatSessionDate(nextSession),
	)
}

func reactionText(rc entity.ReactionContext, emoji string) string {
	return fmt.Sprintf("👀 %s reacted with :%s: to the session reminder in #%s", rc.ReactingDisplayName, emoji, rc.ChannelDisplayName)
}

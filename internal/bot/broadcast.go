package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	apperrors "digital-store-bot/internal/common/errors"
	"digital-store-bot/internal/common/logger"
	usermodels "digital-store-bot/internal/features/user/models"
)

// progressInterval is how many successful deliveries pass between
// status-message edits during a broadcast.
const progressInterval = 10

// Sender is the outbound half of the Bot API used by the broadcaster.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// UserLister supplies the non-blocked audience for a broadcast.
type UserLister interface {
	ListActive(ctx context.Context) ([]*usermodels.User, error)
}

// Summary reports one broadcast run. Total = Sent + Failed always
// holds; the run itself performs no writes to the store.
type Summary struct {
	RunID  string
	Total  int
	Sent   int
	Failed int
}

// Broadcaster fans a message out to every non-blocked user. Each
// delivery is independent: a failure is logged and counted, never
// retried, and never halts the remaining deliveries.
type Broadcaster struct {
	sender Sender
	users  UserLister
}

func NewBroadcaster(sender Sender, users UserLister) *Broadcaster {
	return &Broadcaster{sender: sender, users: users}
}

// Run delivers text to all active users, editing a progress message in
// statusChatID every progressInterval successful sends and finishing
// with a summary.
func (b *Broadcaster) Run(ctx context.Context, statusChatID int64, text string) (Summary, error) {
	users, err := b.users.ListActive(ctx)
	if err != nil {
		return Summary{}, apperrors.NewDatabaseError("list broadcast audience", err)
	}

	sum := Summary{RunID: uuid.NewString(), Total: len(users)}
	logger.Info().Str("run_id", sum.RunID).Int("audience", sum.Total).Msg("broadcast started")

	status, err := b.sender.Send(markdownMessage(statusChatID, progressText(sum)))
	if err != nil {
		return sum, apperrors.NewTelegramAPIError("send broadcast status", err)
	}

	body := "📢 *Broadcast Message*\n\n" + text
	for _, u := range users {
		if _, err := b.sender.Send(markdownMessage(u.ID, body)); err != nil {
			sum.Failed++
			logger.Error().Err(err).
				Str("run_id", sum.RunID).
				Int64("user_id", u.ID).
				Msg("broadcast delivery failed")
			continue
		}
		sum.Sent++

		if sum.Sent%progressInterval == 0 {
			b.editStatus(statusChatID, status.MessageID, progressText(sum))
		}
	}

	b.editStatus(statusChatID, status.MessageID, summaryText(sum))
	logger.Info().Str("run_id", sum.RunID).
		Int("sent", sum.Sent).
		Int("failed", sum.Failed).
		Msg("broadcast completed")

	return sum, nil
}

func (b *Broadcaster) editStatus(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(edit); err != nil {
		logger.Warn().Err(err).Msg("broadcast status edit failed")
	}
}

func markdownMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

func progressText(sum Summary) string {
	return fmt.Sprintf(
		"📤 *Broadcasting Message...*\n\n👥 Total Users: %d\n✅ Sent: %d\n❌ Failed: %d",
		sum.Total, sum.Sent, sum.Failed)
}

func summaryText(sum Summary) string {
	return fmt.Sprintf(
		"✅ *Broadcast Completed!*\n\n👥 Total Users: %d\n✅ Successfully Sent: %d\n❌ Failed: %d",
		sum.Total, sum.Sent, sum.Failed)
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usermodels "digital-store-bot/internal/features/user/models"
)

type fakeSender struct {
	failIDs   map[int64]bool
	messages  []tgbotapi.MessageConfig
	edits     []tgbotapi.EditMessageTextConfig
	messageID int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		if f.failIDs[m.ChatID] {
			return tgbotapi.Message{}, errors.New("forbidden: bot was blocked by the user")
		}
		f.messages = append(f.messages, m)
		f.messageID++
		return tgbotapi.Message{MessageID: f.messageID}, nil
	case tgbotapi.EditMessageTextConfig:
		f.edits = append(f.edits, m)
		return tgbotapi.Message{}, nil
	}
	return tgbotapi.Message{}, fmt.Errorf("unexpected chattable %T", c)
}

type fakeUserLister struct {
	users []*usermodels.User
	err   error
}

func (f *fakeUserLister) ListActive(context.Context) ([]*usermodels.User, error) {
	return f.users, f.err
}

func makeUsers(n int) []*usermodels.User {
	users := make([]*usermodels.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, &usermodels.User{ID: int64(i)})
	}
	return users
}

func TestRunCountsFailuresAndContinues(t *testing.T) {
	sender := &fakeSender{failIDs: map[int64]bool{3: true, 7: true, 15: true}}
	caster := NewBroadcaster(sender, &fakeUserLister{users: makeUsers(25)})

	sum, err := caster.Run(context.Background(), 999, "hello")
	require.NoError(t, err)

	assert.Equal(t, 25, sum.Total)
	assert.Equal(t, 22, sum.Sent)
	assert.Equal(t, 3, sum.Failed)
	assert.Equal(t, sum.Total, sum.Sent+sum.Failed)
	assert.NotEmpty(t, sum.RunID)

	// Status message plus 22 deliveries.
	require.Len(t, sender.messages, 23)
	assert.Equal(t, int64(999), sender.messages[0].ChatID)
	assert.Contains(t, sender.messages[1].Text, "hello")

	// Progress edits at 10 and 20 successful sends, then the summary.
	require.Len(t, sender.edits, 3)
	final := sender.edits[len(sender.edits)-1]
	assert.Contains(t, final.Text, "Broadcast Completed")
	assert.Contains(t, final.Text, "Successfully Sent: 22")
	assert.Contains(t, final.Text, "Failed: 3")
}

func TestRunWithEmptyAudience(t *testing.T) {
	sender := &fakeSender{}
	caster := NewBroadcaster(sender, &fakeUserLister{})

	sum, err := caster.Run(context.Background(), 999, "hello")
	require.NoError(t, err)

	assert.Equal(t, Summary{RunID: sum.RunID}, sum)
	require.Len(t, sender.messages, 1)
	require.Len(t, sender.edits, 1)
	assert.Contains(t, sender.edits[0].Text, "Broadcast Completed")
}

func TestRunFailsWhenAudienceUnavailable(t *testing.T) {
	sender := &fakeSender{}
	caster := NewBroadcaster(sender, &fakeUserLister{err: errors.New("db down")})

	_, err := caster.Run(context.Background(), 999, "hello")
	require.Error(t, err)
	assert.Empty(t, sender.messages)
}

func TestBroadcastBodyCarriesHeader(t *testing.T) {
	sender := &fakeSender{}
	caster := NewBroadcaster(sender, &fakeUserLister{users: makeUsers(1)})

	_, err := caster.Run(context.Background(), 999, "flash sale")
	require.NoError(t, err)

	require.Len(t, sender.messages, 2)
	body := sender.messages[1].Text
	assert.True(t, strings.HasPrefix(body, "📢 *Broadcast Message*"))
	assert.Contains(t, body, "flash sale")
}

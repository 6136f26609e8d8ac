package bot

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductInput(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *productInput
		wantErr bool
	}{
		{
			name: "full input",
			text: "Apps | Stream Plus | Ad-free, Priority support | 299 | Premium streaming",
			want: &productInput{
				category:    "Apps",
				name:        "Stream Plus",
				features:    "Ad-free, Priority support",
				price:       "299",
				description: "Premium streaming",
			},
		},
		{
			name: "optional fields may be empty",
			text: "Games | Cricket Pro || 199 |",
			want: &productInput{category: "Games", name: "Cricket Pro", price: "199"},
		},
		{
			name:    "too few fields",
			text:    "Apps | Stream Plus | 299",
			wantErr: true,
		},
		{
			name:    "too many fields",
			text:    "a | b | c | d | e | f",
			wantErr: true,
		},
		{
			name:    "missing price",
			text:    "Apps | Stream Plus | Ad-free || desc",
			wantErr: true,
		},
		{
			name:    "missing category",
			text:    " | Stream Plus | Ad-free | 299 | desc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProductInput(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func commandMessage(text string) *tgbotapi.Message {
	cmdLen := strings.Index(text, " ")
	if cmdLen == -1 {
		cmdLen = len(text)
	}
	return &tgbotapi.Message{
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func TestParseAdminTargetFromArguments(t *testing.T) {
	id, username, err := parseAdminTarget(commandMessage("/addadmin 42 @bob"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "bob", username)

	id, username, err = parseAdminTarget(commandMessage("/addadmin 42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Empty(t, username)
}

func TestParseAdminTargetFromReply(t *testing.T) {
	msg := commandMessage("/addadmin")
	msg.ReplyToMessage = &tgbotapi.Message{
		From: &tgbotapi.User{ID: 77, UserName: "carol"},
	}

	id, username, err := parseAdminTarget(msg)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.Equal(t, "carol", username)
}

func TestParseAdminTargetRejectsBadInput(t *testing.T) {
	_, _, err := parseAdminTarget(commandMessage("/addadmin"))
	assert.Error(t, err)

	_, _, err = parseAdminTarget(commandMessage("/addadmin @bob"))
	assert.Error(t, err)
}

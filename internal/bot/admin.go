package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "digital-store-bot/internal/common/errors"
	"digital-store-bot/internal/common/logger"
	settingssvc "digital-store-bot/internal/features/settings/service"
)

// denyCallback reports an access-control denial inline on the message
// that carried the privileged button. No state changes.
func (b *Bot) denyCallback(q *tgbotapi.CallbackQuery) error {
	appErr := apperrors.NewForbiddenError(q.From.ID)
	logger.Warn().Str("code", string(appErr.Code)).Int64("user_id", q.From.ID).Msg("privileged action denied")

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		"❌ Access Denied!\n\nYou don't have admin privileges.",
		backKeyboard("⬅️ Back", "back_to_main"))
}

func (b *Bot) showAdminPanel(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	// Reaching the panel cancels any wizard in this chat, mirroring the
	// cancel buttons that point here.
	b.sessions.Clear(q.Message.Chat.ID)

	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	userCount, err := b.users.CountActive(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("count users", err)
	}
	products, err := b.catalog.All(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list products", err)
	}
	orderCount, err := b.orders.Count(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("count orders", err)
	}

	text := "⚙️ *Admin Panel*\n" + formatAdminStats(userCount, len(products), orderCount)
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text,
		adminPanelKeyboard(b.authz.IsOwner(q.From.ID)))
}

func (b *Bot) promptBioChange(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	current, err := b.settings.Get(ctx, settingssvc.KeyBioMessage, "Default bio message")
	if err != nil {
		return apperrors.NewDatabaseError("read bio", err)
	}

	b.sessions.Set(q.Message.Chat.ID, stateAwaitingBio)

	text := fmt.Sprintf("📝 *Change Bio Message*\n\n*Current Bio:*\n%s\n\n"+
		"Send your new bio message below:\n"+
		"• Use markdown formatting\n"+
		"• Include emojis for engagement\n"+
		"• Keep it professional", truncate(current, 150))
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, cancelKeyboard())
}

func (b *Bot) applyBio(ctx context.Context, msg *tgbotapi.Message) error {
	// The wizard terminates whatever happens next.
	b.sessions.Clear(msg.Chat.ID)

	if !b.authz.IsPrivileged(ctx, msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Access denied!")
	}

	newBio := msg.Text
	if err := b.settings.Set(ctx, settingssvc.KeyBioMessage, newBio); err != nil {
		return apperrors.NewDatabaseError("store bio", err)
	}

	return b.replyMarkdown(msg.Chat.ID,
		fmt.Sprintf("✅ *Bio Updated Successfully!*\n\n*New Bio:*\n%s", truncate(newBio, 200)))
}

func (b *Bot) promptBroadcast(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	count, err := b.users.CountActive(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("count users", err)
	}

	b.sessions.Set(q.Message.Chat.ID, stateAwaitingBroadcast)

	text := fmt.Sprintf("📢 *Broadcast Message*\n\n👥 Total Users: %d\n\n"+
		"Send your broadcast message below:\n"+
		"• Keep it clear and concise\n"+
		"• Use markdown formatting\n"+
		"• Include relevant information", count)
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, cancelKeyboard())
}

func (b *Bot) applyBroadcast(ctx context.Context, msg *tgbotapi.Message) error {
	b.sessions.Clear(msg.Chat.ID)

	if !b.authz.IsPrivileged(ctx, msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Access denied!")
	}

	_, err := b.caster.Run(ctx, msg.Chat.ID, msg.Text)
	return err
}

func (b *Bot) showManageProducts(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	products, err := b.catalog.All(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list products", err)
	}

	text := fmt.Sprintf("🛍️ *Product Management*\n\n📊 Total Products: %d\n\nChoose an action:",
		len(products))
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, manageProductsKeyboard())
}

func (b *Bot) showAllProducts(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	products, err := b.catalog.All(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list products", err)
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		formatProductList(products),
		backKeyboard("⬅️ Back to Products", "admin_manage_products"))
}

func (b *Bot) promptNewProduct(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	b.sessions.Set(q.Message.Chat.ID, stateAwaitingProduct)

	text := "➕ *Add New Product*\n\nSend the product in one message:\n\n" +
		"`category | name | features | price | description`\n\n" +
		"Example:\n`Apps | Stream Plus | Ad-free, Priority support | 299 | Premium streaming access`"
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, cancelKeyboard())
}

func (b *Bot) applyNewProduct(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.authz.IsPrivileged(ctx, msg.From.ID) {
		b.sessions.Clear(msg.Chat.ID)
		return b.replyMarkdown(msg.Chat.ID, "❌ Access denied!")
	}

	input, err := parseProductInput(msg.Text)
	if err != nil {
		// Malformed input re-prompts without leaving the wizard.
		return b.replyMarkdown(msg.Chat.ID,
			fmt.Sprintf("⚠️ %s\n\nFormat: `category | name | features | price | description`", err))
	}

	b.sessions.Clear(msg.Chat.ID)

	product, err := b.catalog.Add(ctx, input.category, input.name, input.features, input.price, input.description)
	if err != nil {
		return apperrors.NewDatabaseError("add product", err)
	}

	return b.replyMarkdown(msg.Chat.ID,
		fmt.Sprintf("✅ *Product Added!*\n\n🎯 %s (id %d)\n📁 Category: %s\n💰 Price: %s",
			product.Name, product.ID, product.Category, product.Price))
}

func (b *Bot) showDeleteProducts(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	products, err := b.catalog.All(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list products", err)
	}

	if len(products) == 0 {
		return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
			"📦 No products to delete.",
			backKeyboard("⬅️ Back to Products", "admin_manage_products"))
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		"🗑️ *Delete Product*\n\nPick the product to remove:",
		deleteProductsKeyboard(products))
}

func (b *Bot) deleteProduct(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(q.Data, "admin_del_"), 10, 64)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "malformed delete callback")
	}

	// Idempotent: deleting an id that vanished meanwhile is a no-op.
	if err := b.catalog.Delete(ctx, id); err != nil {
		return apperrors.NewDatabaseError("delete product", err)
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		fmt.Sprintf("✅ Product %d deleted.", id),
		backKeyboard("⬅️ Back to Products", "admin_manage_products"))
}

func (b *Bot) showUserManagement(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	count, err := b.users.CountActive(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("count users", err)
	}

	text := fmt.Sprintf("👥 *User Management*\n\n📊 Total Users: %d\n\nChoose an action:", count)
	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, userManagementKeyboard())
}

func (b *Bot) showAllUsers(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsPrivileged(ctx, q.From.ID) {
		return b.denyCallback(q)
	}

	users, err := b.users.ListActive(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list users", err)
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		formatUserList(users),
		backKeyboard("⬅️ Back to User Management", "admin_user_management"))
}

func (b *Bot) showManageAdmins(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if !b.authz.IsOwner(q.From.ID) {
		return b.denyCallback(q)
	}

	admins, err := b.admins.List(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list admins", err)
	}

	var sb strings.Builder
	sb.WriteString("👤 *Admin Management*\n\n")
	if len(admins) == 0 {
		sb.WriteString("No admins yet.\n\n")
	} else {
		for i, a := range admins {
			sb.WriteString(fmt.Sprintf("%d. @%s (id %d)\n", i+1, escapeMarkdown(a.Username), a.UserID))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Use /addadmin <user\\_id> and /removeadmin <user\\_id>.")

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, sb.String(),
		backKeyboard("⬅️ Back to Admin Panel", "admin_panel"))
}

func (b *Bot) cancelCommand(_ context.Context, msg *tgbotapi.Message) error {
	b.sessions.Clear(msg.Chat.ID)
	return b.replyMarkdown(msg.Chat.ID, "❌ Operation cancelled.")
}

func (b *Bot) usersCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.authz.IsPrivileged(ctx, msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Access denied!")
	}

	count, err := b.users.CountActive(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("count users", err)
	}

	return b.replyMarkdown(msg.Chat.ID, fmt.Sprintf("👥 Total Users: %d", count))
}

func (b *Bot) broadcastCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.authz.IsPrivileged(ctx, msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Access denied!")
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		return b.replyMarkdown(msg.Chat.ID,
			"Usage: /broadcast <message>\nExample: /broadcast Hello everyone!")
	}

	_, err := b.caster.Run(ctx, msg.Chat.ID, text)
	return err
}

func (b *Bot) addAdminCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.authz.IsOwner(msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Only owners can add admins!")
	}

	id, username, err := parseAdminTarget(msg)
	if err != nil {
		return b.replyMarkdown(msg.Chat.ID,
			"Usage: /addadmin <user\\_id> [@username]\n"+
				"or reply to a message from the user with /addadmin")
	}

	if err := b.admins.Grant(ctx, id, username, msg.From.ID); err != nil {
		return apperrors.NewDatabaseError("grant admin", err)
	}

	label := escapeMarkdown(username)
	if label == "" {
		label = strconv.FormatInt(id, 10)
	}
	return b.replyMarkdown(msg.Chat.ID, fmt.Sprintf("✅ %s has been added as admin!", label))
}

func (b *Bot) removeAdminCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if !b.authz.IsOwner(msg.From.ID) {
		return b.replyMarkdown(msg.Chat.ID, "❌ Only owners can remove admins!")
	}

	id, _, err := parseAdminTarget(msg)
	if err != nil {
		return b.replyMarkdown(msg.Chat.ID,
			"Usage: /removeadmin <user\\_id>\n"+
				"or reply to a message from the user with /removeadmin")
	}

	if err := b.admins.Revoke(ctx, id); err != nil {
		return apperrors.NewDatabaseError("revoke admin", err)
	}

	return b.replyMarkdown(msg.Chat.ID, fmt.Sprintf("✅ %d has been removed from admin!", id))
}

// parseAdminTarget resolves the subject of /addadmin and /removeadmin:
// either a numeric user id in the arguments (optionally followed by a
// username), or the author of the replied-to message. Bare usernames
// are rejected because the Bot API offers no username-to-id lookup.
func parseAdminTarget(msg *tgbotapi.Message) (int64, string, error) {
	if reply := msg.ReplyToMessage; reply != nil && reply.From != nil {
		return reply.From.ID, reply.From.UserName, nil
	}

	fields := strings.Fields(msg.CommandArguments())
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("missing user id")
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id %q", fields[0])
	}

	username := ""
	if len(fields) > 1 {
		username = strings.TrimPrefix(fields[1], "@")
	}
	return id, username, nil
}

type productInput struct {
	category    string
	name        string
	features    string
	price       string
	description string
}

// parseProductInput parses the pipe-separated add-product payload.
func parseProductInput(text string) (*productInput, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected 5 fields separated by |, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" || parts[1] == "" || parts[3] == "" {
		return nil, fmt.Errorf("category, name and price are required")
	}

	return &productInput{
		category:    parts[0],
		name:        parts[1],
		features:    parts[2],
		price:       parts[3],
		description: parts[4],
	}, nil
}

// Package bot is the Telegram delivery layer: it owns the long-poll
// loop, routes inbound updates to storefront and admin handlers, and
// renders outbound messages and keyboards.
package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"digital-store-bot/internal/access"
	"digital-store-bot/internal/common/config"
	apperrors "digital-store-bot/internal/common/errors"
	"digital-store-bot/internal/common/logger"
	adminsvc "digital-store-bot/internal/features/admin/service"
	catalogsvc "digital-store-bot/internal/features/catalog/service"
	ordersvc "digital-store-bot/internal/features/order/service"
	settingssvc "digital-store-bot/internal/features/settings/service"
	usersvc "digital-store-bot/internal/features/user/service"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	authz    *access.Authorizer
	users    usersvc.UserService
	admins   adminsvc.AdminService
	catalog  catalogsvc.CatalogService
	orders   ordersvc.OrderService
	settings settingssvc.SettingsService
	sessions *sessionStore
	caster   *Broadcaster
	qr       *QRAsset
	contact  string
}

func New(
	cfg *config.Config,
	authz *access.Authorizer,
	users usersvc.UserService,
	admins adminsvc.AdminService,
	catalog catalogsvc.CatalogService,
	orders ordersvc.OrderService,
	settings settingssvc.SettingsService,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, apperrors.NewTelegramAPIError("create bot", err)
	}
	api.Debug = cfg.Debug

	return &Bot{
		api:      api,
		authz:    authz,
		users:    users,
		admins:   admins,
		catalog:  catalog,
		orders:   orders,
		settings: settings,
		sessions: newSessionStore(),
		caster:   NewBroadcaster(api, users),
		qr:       NewQRAsset(cfg.Store.QRImagePath),
		contact:  cfg.Store.SupportContact,
	}, nil
}

// Run seeds first-start defaults and consumes the long-poll update
// stream until ctx is cancelled. Updates are dispatched one goroutine
// each, so independent conversations proceed concurrently.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.seedDefaults(ctx); err != nil {
		return err
	}

	logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Info().Msg("stopping bot")
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// seedDefaults installs the default bio and two starter products on a
// fresh database so the storefront is never empty.
func (b *Bot) seedDefaults(ctx context.Context) error {
	// Seed only when the key has never been stored; an operator who
	// deliberately cleared the bio keeps the empty value.
	_, ok, err := b.settings.Lookup(ctx, settingssvc.KeyBioMessage)
	if err != nil {
		return apperrors.NewDatabaseError("read bio", err)
	}
	if !ok {
		if err := b.settings.Set(ctx, settingssvc.KeyBioMessage, defaultBioMessage(b.contact)); err != nil {
			return apperrors.NewDatabaseError("seed bio", err)
		}
	}

	products, err := b.catalog.All(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("read catalog", err)
	}
	if len(products) == 0 {
		seeds := []struct {
			category, name, features, price, description string
		}{
			{"Apps", "Stream Plus Premium",
				"Premium features, Ad-free experience, Priority support",
				"299", "Complete premium access to the Stream Plus application"},
			{"Games", "Cricket Pro 24",
				"Live scores, Premium stats, Ad-free viewing",
				"199", "Professional cricket tracking and statistics"},
		}
		for _, s := range seeds {
			if _, err := b.catalog.Add(ctx, s.category, s.name, s.features, s.price, s.description); err != nil {
				return apperrors.NewDatabaseError("seed catalog", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var (
		err    error
		chatID int64
	)

	switch {
	case update.CallbackQuery != nil:
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}
		err = b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		chatID = update.Message.Chat.ID
		err = b.handleCommand(ctx, update.Message)
	case update.Message != nil && len(update.Message.Photo) > 0:
		chatID = update.Message.Chat.ID
		err = b.handlePhoto(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		chatID = update.Message.Chat.ID
		err = b.handleText(ctx, update.Message)
	default:
		return
	}

	if err != nil {
		b.reportError(chatID, err)
	}
}

// reportError is the single top-level error path: log the fault and
// best-effort notify the chat. Nothing is retried.
func (b *Bot) reportError(chatID int64, err error) {
	evt := logger.Error().Err(err)
	if appErr, ok := apperrors.AsAppError(err); ok {
		evt = evt.Str("code", string(appErr.Code))
	}
	evt.Msg("update handler failed")

	if chatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, "❌ An error occurred. Please try again or contact "+b.contact)
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		logger.Error().Err(sendErr).Int64("chat_id", chatID).Msg("could not send error message")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	switch msg.Command() {
	case "start":
		return b.startCommand(ctx, msg)
	case "cancel":
		return b.cancelCommand(ctx, msg)
	case "users":
		return b.usersCommand(ctx, msg)
	case "broadcast":
		return b.broadcastCommand(ctx, msg)
	case "addadmin":
		return b.addAdminCommand(ctx, msg)
	case "removeadmin":
		return b.removeAdminCommand(ctx, msg)
	}
	return nil
}

type callbackHandler func(ctx context.Context, q *tgbotapi.CallbackQuery) error

func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if q.From == nil || q.Message == nil {
		return nil
	}

	handler := b.routeCallback(q.Data)
	if handler == nil {
		b.answerCallbackAlert(q.ID, "⚠️ This action is not available.")
		return nil
	}

	b.answerCallback(q.ID)
	return handler(ctx, q)
}

func (b *Bot) routeCallback(data string) callbackHandler {
	switch {
	case data == "premium_files":
		return b.showCategories
	case strings.HasPrefix(data, "category_"):
		return b.showCategory
	case strings.HasPrefix(data, "product_"):
		return b.showProduct
	case strings.HasPrefix(data, "buy_"):
		return b.startPurchase
	case data == "back_to_main":
		return b.showMainMenu
	case data == "upload_screenshot":
		return b.promptScreenshot
	case data == "admin_panel":
		return b.showAdminPanel
	case data == "admin_change_bio":
		return b.promptBioChange
	case data == "admin_manage_products":
		return b.showManageProducts
	case data == "admin_view_products":
		return b.showAllProducts
	case data == "admin_add_product":
		return b.promptNewProduct
	case data == "admin_delete_product":
		return b.showDeleteProducts
	case strings.HasPrefix(data, "admin_del_"):
		return b.deleteProduct
	case data == "admin_user_management":
		return b.showUserManagement
	case data == "admin_view_users":
		return b.showAllUsers
	case data == "admin_broadcast":
		return b.promptBroadcast
	case data == "admin_manage_admins":
		return b.showManageAdmins
	}
	return nil
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) error {
	from := msg.From
	if from == nil {
		return nil
	}

	if err := b.users.Track(ctx, from.ID, from.UserName, from.FirstName, from.LastName); err != nil {
		logger.Error().Err(err).Int64("user_id", from.ID).Msg("failed to track user")
	}

	switch b.sessions.Get(msg.Chat.ID) {
	case stateAwaitingBio:
		return b.applyBio(ctx, msg)
	case stateAwaitingBroadcast:
		return b.applyBroadcast(ctx, msg)
	case stateAwaitingProduct:
		return b.applyNewProduct(ctx, msg)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "👋 Hello! Use /start to see available options.")
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚀 Get Started", "back_to_main"),
		),
	)
	return b.send(reply)
}

// sendTyping fires the typing indicator on a detached goroutine. It is
// deliberately not awaited: the handler may finish before the cosmetic
// side effect lands, an accepted race with no correctness impact.
func (b *Bot) sendTyping(chatID int64) {
	go func() {
		action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
		if _, err := b.api.Request(action); err != nil {
			logger.Debug().Err(err).Int64("chat_id", chatID).Msg("typing action failed")
		}
	}()
}

func (b *Bot) answerCallback(id string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, "")); err != nil {
		logger.Debug().Err(err).Msg("callback answer failed")
	}
}

func (b *Bot) answerCallbackAlert(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(id, text)); err != nil {
		logger.Debug().Err(err).Msg("callback alert failed")
	}
}

func (b *Bot) send(c tgbotapi.Chattable) error {
	if _, err := b.api.Send(c); err != nil {
		return apperrors.NewTelegramAPIError("send message", err)
	}
	return nil
}

func (b *Bot) editMessage(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		return apperrors.NewTelegramAPIError("edit message", err)
	}
	return nil
}

func (b *Bot) replyMarkdown(chatID int64, text string) error {
	return b.send(markdownMessage(chatID, text))
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	apperrors "digital-store-bot/internal/common/errors"
	"digital-store-bot/internal/common/logger"
	catalogrepo "digital-store-bot/internal/features/catalog/repository"
	settingssvc "digital-store-bot/internal/features/settings/service"
)

func (b *Bot) startCommand(ctx context.Context, msg *tgbotapi.Message) error {
	user := msg.From
	b.sendTyping(msg.Chat.ID)

	if err := b.users.Track(ctx, user.ID, user.UserName, user.FirstName, user.LastName); err != nil {
		// The greeting still goes out when tracking fails.
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to track user")
	}

	var welcome string
	switch {
	case b.authz.IsOwner(user.ID) && user.UserName != "":
		welcome = fmt.Sprintf("👑 Welcome back, Owner @%s!", user.UserName)
	case b.authz.IsOwner(user.ID):
		welcome = "👑 Welcome back, Owner!"
	default:
		welcome = fmt.Sprintf("👋 Welcome %s!", user.FirstName)
	}

	bio, err := b.settings.Get(ctx, settingssvc.KeyBioMessage, "Welcome to our store!")
	if err != nil {
		return apperrors.NewDatabaseError("read bio", err)
	}

	reply := markdownMessage(msg.Chat.ID, welcome+"\n\n"+bio)
	reply.ReplyMarkup = mainMenuKeyboard(b.authz.IsPrivileged(ctx, user.ID))
	return b.send(reply)
}

func (b *Bot) showMainMenu(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	// Also serves as the wizard cancel path when reached from a cancel
	// button.
	b.sessions.Clear(q.Message.Chat.ID)

	bio, err := b.settings.Get(ctx, settingssvc.KeyBioMessage, "Welcome to our store!")
	if err != nil {
		return apperrors.NewDatabaseError("read bio", err)
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, bio,
		mainMenuKeyboard(b.authz.IsPrivileged(ctx, q.From.ID)))
}

func (b *Bot) showCategories(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	b.sendTyping(q.Message.Chat.ID)

	if err := b.users.Track(ctx, q.From.ID, q.From.UserName, q.From.FirstName, q.From.LastName); err != nil {
		logger.Error().Err(err).Int64("user_id", q.From.ID).Msg("failed to track user")
	}

	categories, err := b.catalog.Categories(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("list categories", err)
	}

	if len(categories) == 0 {
		return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
			"🚫 No products available at the moment.\n\nPlease check back later!",
			backKeyboard("⬅️ Back to Main", "back_to_main"))
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		"💎 *Premium Digital Products*\n\nChoose a category to explore our premium collection:",
		categoriesKeyboard(categories))
}

func (b *Bot) showCategory(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	category := strings.TrimPrefix(q.Data, "category_")

	products, err := b.catalog.ByCategory(ctx, category)
	if err != nil {
		return apperrors.NewDatabaseError("list category products", err)
	}

	if len(products) == 0 {
		return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
			fmt.Sprintf("🚫 No products found in %s category.", category),
			backKeyboard("⬅️ Back to Categories", "premium_files"))
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		fmt.Sprintf("📁 *%s Products*\n\nAvailable products in this category:", category),
		productsKeyboard(products))
}

func (b *Bot) showProduct(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	id, err := strconv.ParseInt(strings.TrimPrefix(q.Data, "product_"), 10, 64)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "malformed product callback")
	}

	product, err := b.catalog.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrProductNotFound) {
			return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
				"❌ Product not found!",
				backKeyboard("⬅️ Back", "premium_files"))
		}
		return apperrors.NewDatabaseError("get product", err)
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
		formatProductMessage(product), productKeyboard(product))
}

func (b *Bot) startPurchase(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	id, err := strconv.ParseInt(strings.TrimPrefix(q.Data, "buy_"), 10, 64)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "malformed buy callback")
	}

	product, err := b.catalog.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrProductNotFound) {
			return b.editMessage(q.Message.Chat.ID, q.Message.MessageID,
				"❌ Product not found!",
				backKeyboard("⬅️ Back", "premium_files"))
		}
		return apperrors.NewDatabaseError("get product", err)
	}

	// Amount is copied from the current price; later price edits never
	// touch this row.
	if _, err := b.orders.AddIntent(ctx, q.From.ID, product.Name, product.Price); err != nil {
		return apperrors.NewDatabaseError("record purchase intent", err)
	}

	text := paymentMessage(product.Price, b.contact)
	kb := purchaseKeyboard()

	if b.qr.Exists() {
		photo := tgbotapi.NewPhoto(q.Message.Chat.ID, tgbotapi.FilePath(b.qr.Path()))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = kb
		if _, err := b.api.Send(photo); err == nil {
			// Drop the original menu message to avoid clutter.
			if _, err := b.api.Request(tgbotapi.NewDeleteMessage(q.Message.Chat.ID, q.Message.MessageID)); err != nil {
				logger.Debug().Err(err).Msg("failed to delete menu message")
			}
			return nil
		} else {
			logger.Error().Err(err).Msg("failed to send QR photo")
		}
	}

	return b.editMessage(q.Message.Chat.ID, q.Message.MessageID, text, kb)
}

func (b *Bot) promptScreenshot(_ context.Context, q *tgbotapi.CallbackQuery) error {
	return b.replyMarkdown(q.Message.Chat.ID,
		"📸 Just send the payment screenshot here as a photo.")
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) error {
	user := msg.From
	if user == nil {
		return nil
	}
	b.sendTyping(msg.Chat.ID)

	// The largest rendition carries the most legible file id.
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	if _, err := b.orders.AddScreenshot(ctx, user.ID, fileID); err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to save screenshot")
		return b.replyMarkdown(msg.Chat.ID,
			"❌ Error processing screenshot. Please try again or contact "+b.contact)
	}

	return b.replyMarkdown(msg.Chat.ID,
		"✅ *Payment Screenshot Received!*\n\n"+
			"📋 Your payment will be verified within 24 hours\n"+
			"📞 Contact: "+b.contact+" for any queries\n"+
			"🔔 You'll be notified once verified")
}

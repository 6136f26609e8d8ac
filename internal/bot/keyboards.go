package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	catalogmodels "digital-store-bot/internal/features/catalog/models"
)

func mainMenuKeyboard(privileged bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💎 Premium Files", "premium_files"),
		),
	}
	if privileged {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Admin Panel", "admin_panel"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func categoriesKeyboard(categories []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📁 "+c, "category_"+c),
		))
	}
	rows = append(rows, backRow("⬅️ Back to Main", "back_to_main"))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productsKeyboard(products []*catalogmodels.Product) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range products {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🎯 %s - %s", p.Name, p.Price),
				fmt.Sprintf("product_%d", p.ID),
			),
		))
	}
	rows = append(rows, backRow("⬅️ Back to Categories", "premium_files"))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productKeyboard(p *catalogmodels.Product) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Buy Now", fmt.Sprintf("buy_%d", p.ID)),
		),
		backRow("⬅️ Back to Products", "category_"+p.Category),
	)
}

func purchaseKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📸 Upload Screenshot", "upload_screenshot"),
		),
		backRow("🏠 Main Menu", "back_to_main"),
	)
}

func adminPanelKeyboard(owner bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Change Bio", "admin_change_bio"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛍️ Manage Products", "admin_manage_products"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 User Management", "admin_user_management"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📢 Broadcast Message", "admin_broadcast"),
		),
	}
	if owner {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 Admin Management", "admin_manage_admins"),
		))
	}
	rows = append(rows, backRow("⬅️ Back to Main", "back_to_main"))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func manageProductsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 View All Products", "admin_view_products"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add New Product", "admin_add_product"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ Delete Product", "admin_delete_product"),
		),
		backRow("⬅️ Back to Admin Panel", "admin_panel"),
	)
}

func deleteProductsKeyboard(products []*catalogmodels.Product) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range products {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑️ %s (id %d)", p.Name, p.ID),
				fmt.Sprintf("admin_del_%d", p.ID),
			),
		))
	}
	rows = append(rows, backRow("⬅️ Back to Products", "admin_manage_products"))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func userManagementKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 View All Users", "admin_view_users"),
		),
		backRow("⬅️ Back to Admin Panel", "admin_panel"),
	)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "admin_panel"),
		),
	)
}

func backKeyboard(label, data string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow(label, data))
}

func backRow(label, data string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(label, data),
	)
}

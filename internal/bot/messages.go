package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	catalogmodels "digital-store-bot/internal/features/catalog/models"
	usermodels "digital-store-bot/internal/features/user/models"
)

func defaultBioMessage(contact string) string {
	return "🚀 *Welcome to Premium Digital Store!* 🚀\n\n" +
		"🎯 Get premium apps & tools\n" +
		"💎 Quality guaranteed products\n" +
		"⚡ Instant delivery after payment\n" +
		"🛡️ 100% secure transactions\n\n" +
		"💬 Contact: " + contact
}

func formatProductMessage(p *catalogmodels.Product) string {
	return fmt.Sprintf(`
🛍️ *%s*

✨ *Features:*
%s

💰 *Price:* %s

📝 *Description:*
%s
`, p.Name, p.Features, p.Price, p.Description)
}

func formatAdminStats(userCount, productCount, orderCount int) string {
	return fmt.Sprintf(`
📊 *Bot Statistics*

👥 Total Users: %d
🛍️ Total Products: %d
🛒 Total Orders: %d
🤖 Bot Status: Active
`, userCount, productCount, orderCount)
}

func formatProductList(products []*catalogmodels.Product) string {
	if len(products) == 0 {
		return "📦 *All Products*\n\nNo products found."
	}

	var sb strings.Builder
	sb.WriteString("📦 *All Products*\n\n")
	for i, p := range products {
		sb.WriteString(fmt.Sprintf("%d. *%s* (id %d)\n", i+1, p.Name, p.ID))
		sb.WriteString(fmt.Sprintf("   Category: %s\n", p.Category))
		sb.WriteString(fmt.Sprintf("   Price: %s\n", p.Price))
		sb.WriteString(fmt.Sprintf("   Features: %s\n\n", truncate(p.Features, 50)))
	}
	return sb.String()
}

func formatUserList(users []*usermodels.User) string {
	if len(users) == 0 {
		return "👥 *All Users*\n\nNo users found."
	}

	var sb strings.Builder
	sb.WriteString("👥 *All Users*\n\n")
	shown := users
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, u := range shown {
		sb.WriteString(fmt.Sprintf("%d. %s (@%s)\n", i+1,
			escapeMarkdown(u.FirstName), escapeMarkdown(u.Username)))
		sb.WriteString(fmt.Sprintf("   ID: %d\n", u.ID))
		sb.WriteString(fmt.Sprintf("   Joined: %s\n\n", u.JoinedAt.Format("2006-01-02")))
	}
	if len(users) > 10 {
		sb.WriteString(fmt.Sprintf("... and %d more users", len(users)-10))
	}
	return sb.String()
}

// truncate caps s at max bytes without splitting a rune; the Bot API
// rejects payloads that are not valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// escapeMarkdown neutralizes the legacy-Markdown control characters in
// user-supplied text before it lands in a ParseMode Markdown message.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

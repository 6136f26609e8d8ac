package bot

import (
	"fmt"
	"os"
)

// QRAsset wraps the well-known payment QR image location. Presence is
// checked before each purchase flow; absence degrades the flow to a
// text-only payment message.
type QRAsset struct {
	path string
}

func NewQRAsset(path string) *QRAsset {
	return &QRAsset{path: path}
}

func (q *QRAsset) Path() string {
	return q.path
}

func (q *QRAsset) Exists() bool {
	info, err := os.Stat(q.path)
	return err == nil && !info.IsDir()
}

// paymentMessage builds the payment instructions shown after a
// purchase intent is recorded.
func paymentMessage(amount, contact string) string {
	message := "💳 *Payment Instructions*\n\n"
	message += "🧾 Scan the QR code below to pay\n"
	if amount != "" {
		message += fmt.Sprintf("💰 Amount: %s\n", amount)
	}
	message += "📸 Send payment screenshot after completing\n"
	message += fmt.Sprintf("📞 Contact Owner: %s\n\n", contact)
	message += "⚡ Payment will be verified within 24 hours"
	return message
}

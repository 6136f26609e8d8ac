package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRAssetExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qr.jpg")

	qr := NewQRAsset(path)
	assert.False(t, qr.Exists())

	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o644))
	assert.True(t, qr.Exists())

	// A directory at the path does not count as an image.
	dirQR := NewQRAsset(dir)
	assert.False(t, dirQR.Exists())
}

func TestPaymentMessageMentionsAmountAndContact(t *testing.T) {
	text := paymentMessage("299", "@storeadmin")
	assert.Contains(t, text, "299")
	assert.Contains(t, text, "@storeadmin")
	assert.Contains(t, text, "Payment Instructions")
}

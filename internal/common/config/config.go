package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		// Owner IDs have unconditional access to every privileged
		// operation, including admin management.
		OwnerIDs []int64 `env:"OWNER_IDS" envSeparator:","`
	}

	Database struct {
		Path string `env:"DATABASE_PATH" envDefault:"bot.db"`
	}

	Store struct {
		// Payment QR image attached to purchase instructions. A missing
		// file degrades the flow to a text-only payment message.
		QRImagePath    string `env:"QR_IMAGE_PATH" envDefault:"static/qr_payment.jpg"`
		SupportContact string `env:"SUPPORT_CONTACT" envDefault:"@storeadmin"`
	}
}

// Load reads configuration from the environment, with a best-effort
// .env file for local development. Configuration is fixed at startup
// and not reloadable.
func Load() (*Config, error) {
	// Missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

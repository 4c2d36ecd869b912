package main

// CLI defines the command-line interface structure for Kong. Every flag
// can also be set through the environment, which is how the server is
// normally configured in deployment.
type CLI struct {
	Addr string `default:":8000" env:"ADDR" help:"HTTP listen address"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" required:"" help:"Google Gemini API key"`

	GmailFrom string `env:"GMAIL_FROM" help:"Gmail address used as the sender; sending is disabled when empty"`

	RedisAddr     string `env:"REDIS_ADDR" help:"Redis address for the profile cache; an in-memory cache is used when empty"`
	RedisPassword string `env:"REDIS_PASSWORD" help:"Redis password"`

	SenderName           string `env:"SENDER_NAME" default:"Dishant Thakur" help:"Default sender name"`
	SenderCompany        string `env:"SENDER_COMPANY" default:"Scogo Networks" help:"Default sender company"`
	SenderSpecialization string `env:"SENDER_SPECIALIZATION" default:"AI-powered IT support solutions" help:"Default sender specialization"`
	SenderPhone          string `env:"SENDER_PHONE" help:"Default sender phone"`
	SenderWebsite        string `env:"SENDER_WEBSITE" help:"Default sender website"`

	RateLimit float64 `env:"SCRAPE_RATE_LIMIT" default:"2" help:"Outbound scrape requests per second"`
}

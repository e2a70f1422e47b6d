package postmark

// Config holds Postmark API configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail  string `env:"POSTMARK_SENDER_EMAIL,required"`
	ReplyTo      string `env:"POSTMARK_REPLY_TO"`
}

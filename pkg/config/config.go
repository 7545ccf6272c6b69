package config

// MailConfig holds configuration for the mail composer and dispatcher.
// Username doubles as the envelope sender; Password is a Gmail App Password
// when two-factor authentication is enabled on the account.
type MailConfig struct {
	Mailer      string `env:"MAIL_MAILER" envDefault:"smtp"` // smtp, log
	Host        string `env:"MAIL_HOST" envDefault:"smtp.gmail.com"`
	Port        string `env:"MAIL_PORT" envDefault:"587"`
	Username    string `env:"GMAIL_SENDER"`
	Password    string `env:"GMAIL_APP_PASSWORD"`
	FromAddress string `env:"MAIL_FROM_ADDRESS"` // defaults to Username when empty
	FromName    string `env:"MAIL_FROM_NAME"`
}

// Config is the top-level application configuration
type Config struct {
	Mail MailConfig
}

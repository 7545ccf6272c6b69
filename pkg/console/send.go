package console

import (
	"context"

	"github.com/pixelvide/gmail-go/pkg/config"
	"github.com/pixelvide/gmail-go/pkg/mail"
	"github.com/pixelvide/gmail-go/pkg/root"
	"github.com/pixelvide/gmail-go/pkg/telemetry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

var (
	sendTo          string
	sendSubject     string
	sendBody        string
	sendHTML        bool
	sendCc          []string
	sendBcc         []string
	sendAttachments []string
	sendDriver      string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single email",
	Long: `Send a single email through Gmail's SMTP submission endpoint.

Credentials come from the environment (or a .env file):

  GMAIL_SENDER        the Gmail address to send from
  GMAIL_APP_PASSWORD  a Gmail App Password (not the account password;
                      required when two-factor authentication is enabled)

Use --driver log for a dry run that prints the message instead of sending it.`,
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.SetGlobalLogger()

		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if sendDriver != "" {
			cfg.Mail.Mailer = sendDriver
		}

		tp, err := telemetry.InitTracer("gmail-go")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Error shutting down tracer")
			}
		}()

		mailer, err := mail.NewMailer(cfg.Mail)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create mailer")
		}

		msg := &mail.Message{
			To:          sendTo,
			Subject:     sendSubject,
			Body:        sendBody,
			IsHTML:      sendHTML,
			Cc:          sendCc,
			Bcc:         sendBcc,
			Attachments: sendAttachments,
		}

		ctx, span := tp.Tracer("console").Start(log.Logger.WithContext(context.Background()), "mail.send")
		span.SetAttributes(attribute.String("mail.to", msg.To))
		defer span.End()

		if err := mailer.Send(ctx, msg); err != nil {
			span.RecordError(err)
			log.Fatal().Err(err).Str("kind", string(mail.KindOf(err))).Msg("Send failed")
		}
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "Recipient address (required)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Subject line")
	sendCmd.Flags().StringVar(&sendBody, "body", "", "Message body")
	sendCmd.Flags().BoolVar(&sendHTML, "html", false, "Send the body as text/html")
	sendCmd.Flags().StringSliceVar(&sendCc, "cc", nil, "Cc addresses")
	sendCmd.Flags().StringSliceVar(&sendBcc, "bcc", nil, "Bcc addresses")
	sendCmd.Flags().StringSliceVar(&sendAttachments, "attach", nil, "Attachment file paths")
	sendCmd.Flags().StringVar(&sendDriver, "driver", "", "Override the mail driver (smtp, log)")
	_ = sendCmd.MarkFlagRequired("to")

	root.GetRoot().AddCommand(sendCmd)
}

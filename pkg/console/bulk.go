package console

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"

	"github.com/pixelvide/gmail-go/pkg/config"
	"github.com/pixelvide/gmail-go/pkg/mail"
	"github.com/pixelvide/gmail-go/pkg/root"
	"github.com/pixelvide/gmail-go/pkg/telemetry"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	bulkRecipientsFile string
	bulkSubject        string
	bulkBody           string
	bulkHTML           bool
	bulkPause          time.Duration
	bulkDriver         string
)

var bulkCmd = &cobra.Command{
	Use:   "send:bulk",
	Short: "Send the same email to a list of recipients, one at a time",
	Long: `Send the same email to every address in a recipients file.

The file contains one address per line; blank lines and lines starting
with # are skipped. Messages go out sequentially with a pause between
sends (--pause, default 1s) so Gmail's sending limits are not tripped.
Each message is a single attempt; failures are logged and the run
continues with the next recipient.`,
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.SetGlobalLogger()

		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if bulkDriver != "" {
			cfg.Mail.Mailer = bulkDriver
		}

		recipients, err := readRecipients(bulkRecipientsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", bulkRecipientsFile).Msg("Failed to read recipients file")
		}
		if len(recipients) == 0 {
			log.Fatal().Str("file", bulkRecipientsFile).Msg("Recipients file is empty")
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

		template := mail.Message{
			Subject: bulkSubject,
			Body:    bulkBody,
			IsHTML:  bulkHTML,
		}

		log.Info().Int("recipients", len(recipients)).Dur("pause", bulkPause).Msg("Starting bulk send")

		ctx := log.Logger.WithContext(context.Background())
		sent, failed := runBulk(ctx, mailer, tp.Tracer("console"), template, recipients, bulkPause)

		log.Info().Int("sent", sent).Int("failed", failed).Msg("Bulk send finished")
	},
}

// readRecipients parses a recipients file: one address per line. Blank lines
// and lines starting with # are skipped.
func readRecipients(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recipients []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		recipients = append(recipients, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return recipients, nil
}

// runBulk sends a copy of template to each recipient sequentially, pausing
// between sends. Each send is one attempt; a failure is logged and the run
// moves on. Returns the sent and failed counts.
func runBulk(ctx context.Context, mailer mail.Mailer, tracer trace.Tracer, template mail.Message, recipients []string, pause time.Duration) (sent, failed int) {
	logger := zerolog.Ctx(ctx)

	for i, rcpt := range recipients {
		if i > 0 && pause > 0 {
			time.Sleep(pause)
		}

		msg := template
		msg.To = rcpt

		sendCtx, span := tracer.Start(ctx, "mail.send")
		span.SetAttributes(attribute.String("mail.to", rcpt))

		if err := mailer.Send(sendCtx, &msg); err != nil {
			span.RecordError(err)
			logger.Error().Err(err).Str("to", rcpt).Str("kind", string(mail.KindOf(err))).Msg("Bulk send: message failed")
			failed++
		} else {
			sent++
		}
		span.End()
	}

	return sent, failed
}

func init() {
	bulkCmd.Flags().StringVar(&bulkRecipientsFile, "recipients", "", "Path to the recipients file (required)")
	bulkCmd.Flags().StringVar(&bulkSubject, "subject", "", "Subject line")
	bulkCmd.Flags().StringVar(&bulkBody, "body", "", "Message body")
	bulkCmd.Flags().BoolVar(&bulkHTML, "html", false, "Send the body as text/html")
	bulkCmd.Flags().DurationVar(&bulkPause, "pause", time.Second, "Pause between sequential sends")
	bulkCmd.Flags().StringVar(&bulkDriver, "driver", "", "Override the mail driver (smtp, log)")
	_ = bulkCmd.MarkFlagRequired("recipients")

	root.GetRoot().AddCommand(bulkCmd)
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"meeting-notes-backend/pkg/apperror"
	"meeting-notes-backend/pkg/config"
	"meeting-notes-backend/pkg/logger"
	"meeting-notes-backend/pkg/mailer"
	"meeting-notes-backend/pkg/metrics"
)

// emailUsecase implements EmailUsecase interface
type emailUsecase struct {
	relay  RelayConfig
	sender Sender
	logger *logger.Logger
	now    func() time.Time
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(relay RelayConfig, sender Sender, log *logger.Logger) EmailUsecase {
	return &emailUsecase{
		relay:  relay,
		sender: sender,
		logger: log.WithComponent("email"),
		now:    time.Now,
	}
}

// SendSummary mails summary to every recipient in one relay session.
// Missing credentials fail before anything touches the network.
func (u *emailUsecase) SendSummary(ctx context.Context, summary string, recipients []string, subject string) (err error) {
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = apperror.KindOf(err).String()
		}
		metrics.EmailsSentTotal.WithLabelValues(outcome).Inc()
	}()

	if subject == "" {
		subject = config.DefaultSubject
	}

	log := u.logger.WithContext(ctx)
	log.Info("attempting to send email",
		slog.String("from", u.relay.Username),
		slog.String("smtp_server", u.relay.Server),
		slog.Int("smtp_port", u.relay.Port),
		slog.Int("recipients", len(recipients)),
	)

	if u.relay.Username == "" || u.relay.Password == "" {
		log.Error("email credentials not configured")
		return apperror.New(apperror.KindConfigMissing, "Email credentials not configured")
	}

	data, err := composeMessage(u.relay.Username, recipients, subject, ComposeBody(subject, summary), u.now())
	if err != nil {
		log.Error("failed to compose email", slog.String("error", err.Error()))
		return apperror.Wrap(apperror.KindUnclassified, "Error sending email", err)
	}

	if err := u.sender.Send(&mailer.Message{
		From: u.relay.Username,
		To:   recipients,
		Data: data,
	}); err != nil {
		return u.classify(log, err)
	}

	log.Info("email sent successfully")
	return nil
}

func (u *emailUsecase) classify(log *logger.Logger, err error) error {
	switch {
	case mailer.IsAuthRejected(err):
		log.Error("SMTP authentication error", slog.String("error", err.Error()))
		return apperror.Wrap(apperror.KindAuth, "Email authentication failed. Please check your app password", err)
	case mailer.IsProtocolError(err):
		log.Error("SMTP error", slog.String("error", err.Error()))
		return apperror.Wrap(apperror.KindTransport, "SMTP error", err)
	default:
		log.Error("general error sending email", slog.String("error", err.Error()))
		return apperror.Wrap(apperror.KindUnclassified, "Error sending email", err)
	}
}

package sparkpost

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	sp "github.com/SparkPost/gosparkpost"
	"github.com/google/uuid"

	email "github.com/International-Combat-Archery-Alliance/sparkmail"
)

var _ email.Sender = &Sender{}

const apiVersion = 1

// TransmissionClient is the part of *sp.Client the sender uses.
type TransmissionClient interface {
	SendContext(ctx context.Context, t *sp.Transmission) (id string, res *sp.Response, err error)
}

// ClientFactory builds the transmission client for a resolved API config.
type ClientFactory func(cfg *sp.Config) (TransmissionClient, error)

// Sender delivers transactional email through the SparkPost Transmissions
// API. It holds no mutable state and is safe for concurrent use.
type Sender struct {
	client    TransmissionClient
	logger    *slog.Logger
	newClient ClientFactory
	newID     func() string
	config    Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger that records send outcomes. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClientFactory replaces the gosparkpost client constructor.
func WithClientFactory(f ClientFactory) Option {
	return func(s *Sender) {
		if f != nil {
			s.newClient = f
		}
	}
}

// WithIDGenerator replaces the generator for per-send correlation ids.
func WithIDGenerator(f func() string) Option {
	return func(s *Sender) {
		if f != nil {
			s.newID = f
		}
	}
}

// New validates cfg and prepares a client for the configured region.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sender{
		config:    cfg,
		logger:    slog.Default(),
		newClient: newSparkPostClient,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	client, err := s.newClient(&sp.Config{
		BaseUrl:    cfg.Region.BaseURL(),
		ApiKey:     cfg.APIKey,
		ApiVersion: apiVersion,
	})
	if err != nil {
		return nil, email.NewInvalidConfigError("unable to initialise sparkpost client", err)
	}
	s.client = client

	return s, nil
}

// Send builds a Sender from cfg and sends a single message.
func Send(ctx context.Context, cfg Config, recipient, subject, textBody, htmlBody string, opts ...Option) error {
	s, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	return s.SendEmail(ctx, email.Email{
		To:       recipient,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}

// SendEmail submits one transmission. The recipient is not validated locally.
// Failures are always logged; they are returned only under the Propagate policy.
func (s *Sender) SendEmail(ctx context.Context, e email.Email) error {
	sendID := s.newID()
	log := s.logger.With(
		slog.String("send_id", sendID),
		slog.String("region", s.config.Region.String()),
	)

	id, res, err := s.client.SendContext(ctx, &sp.Transmission{
		Recipients: []string{e.To},
		Content: sp.Content{
			From:    s.config.SenderAddress,
			Subject: e.Subject,
			Text:    e.TextBody,
			HTML:    e.HTMLBody,
		},
		Metadata: map[string]string{"send_id": sendID},
	})
	if err == nil && statusCode(res) >= http.StatusMultipleChoices {
		err = fmt.Errorf("unexpected HTTP status %d", statusCode(res))
	}
	if err != nil {
		return s.handleFailure(ctx, log, res, err)
	}

	log.DebugContext(ctx, "transmission accepted",
		slog.String("transmission_id", id),
		slog.Int("status", statusCode(res)),
	)

	return nil
}

func (s *Sender) handleFailure(ctx context.Context, log *slog.Logger, res *sp.Response, err error) error {
	status := statusCode(res)

	var cause error = err
	if status != 0 {
		log.ErrorContext(ctx, "sparkpost returned an error response",
			slog.Int("status", status),
			slog.Any("errors", res.Errors),
			slog.Any("error", err),
		)
		cause = &APIError{StatusCode: status, Err: err}
	} else {
		log.ErrorContext(ctx, "sparkpost request failed", slog.Any("error", err))
	}

	if s.config.Policy != Propagate {
		return nil
	}

	return email.NewDeliveryFailedError(describeFailure(status), cause)
}

// APIError is an error response from the SparkPost API.
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sparkpost: HTTP %d: %v", e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func describeFailure(status int) string {
	switch {
	case status == 0:
		return "request to sparkpost failed"
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return "sparkpost rejected the api key"
	case status == 420, status == http.StatusTooManyRequests:
		return "sending rate limit exceeded"
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return "transmission rejected by sparkpost"
	case status >= 500:
		return "sparkpost service error"
	default:
		return fmt.Sprintf("unexpected sparkpost response (HTTP %d)", status)
	}
}

func statusCode(res *sp.Response) int {
	if res == nil || res.HTTP == nil {
		return 0
	}
	return res.HTTP.StatusCode
}

func newSparkPostClient(cfg *sp.Config) (TransmissionClient, error) {
	client := &sp.Client{}
	if err := client.Init(cfg); err != nil {
		return nil, err
	}
	return client, nil
}

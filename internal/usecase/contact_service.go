package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

const maxContactMessageLength = 5000

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ContactService accepts messages from the public contact form. Messages are
// written to the log; there is no mailbox behind it.
type ContactService struct {
	logger *logging.Logger
}

func NewContactService(logger *logging.Logger) *ContactService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ContactService{logger: logger.Named("contact")}
}

func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.Submit")
	defer span.End()

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Message == "" {
		return errors.Newf("%w: name and message are required", ErrInvalidInput)
	}
	if len(msg.Message) > maxContactMessageLength {
		return errors.Newf("%w: message exceeds %d characters", ErrInvalidInput, maxContactMessageLength)
	}
	email, err := account.NormalizeEmail(msg.Email)
	if err != nil {
		return invalid(err)
	}

	s.logger.InfoContext(ctx, "contact message received",
		"name", msg.Name,
		"email", email,
		"message", msg.Message,
	)
	return nil
}

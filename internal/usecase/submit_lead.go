package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

type SubmitLeadUseCase struct {
	Notifier    LeadNotifier
	PhoneRegion string
	Recorder    Recorder
	Logger      *logging.Logger
	now         func() time.Time
}

func NewSubmitLeadUseCase(notifier LeadNotifier, phoneRegion string, recorder Recorder, logger *logging.Logger) *SubmitLeadUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SubmitLeadUseCase{
		Notifier:    notifier,
		PhoneRegion: phoneRegion,
		Recorder:    recorder,
		Logger:      logger,
		now:         time.Now,
	}
}

// Execute validates the submission and relays it. Nothing is retried and nothing is stored.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	input = normalizeSubmitLeadInput(input)

	if validationErrors := ValidateSubmitLeadInput(input); len(validationErrors) > 0 {
		parts := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			parts = append(parts, e.Field+" ("+e.Message+")")
		}
		uc.Recorder.RecordLeadSubmission("invalid")
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "validation failed: " + strings.Join(parts, ", "),
			Fields:  validationErrors,
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	lead := entity.Lead{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           NormalizePhone(input.Phone, uc.PhoneRegion),
		Company:         input.Company,
		ServiceInterest: input.ServiceInterest,
		ProjectDetails:  input.ProjectDetails,
		Budget:          input.Budget,
		Timeline:        input.Timeline,
		Currency:        currency,
		SubmittedAt:     uc.now().UTC(),
	}

	if err := uc.Notifier.NotifyLead(ctx, lead); err != nil {
		uc.Logger.Error("lead delivery failed", "error", err, "service_interest", lead.ServiceInterest)
		uc.Recorder.RecordLeadSubmission("failed")
		return nil, &TechnicalError{
			Code:    CodeEmailFailed,
			Message: "failed to send email",
			Err:     err,
		}
	}

	uc.Logger.Info("lead delivered", "service_interest", lead.ServiceInterest, "budget", lead.Budget, "currency", lead.Currency)
	uc.Recorder.RecordLeadSubmission("sent")

	return &SubmitLeadOutput{
		Success: true,
		Message: "Email sent successfully!",
	}, nil
}

package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petalia/backend/internal/domain/conversion"
	"github.com/petalia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Webhook paths registered with the external scheduler
const (
	WebhookPathSecondAttempt = "/webhooks/conversions/second-attempt"
	WebhookPathFeedback      = "/webhooks/conversions/feedback"
)

// TemplateWelcomeFallback reaches leads whose conversation window is closed
const TemplateWelcomeFallback = "boas_vindas"

// ServiceConfig tunes the engagement sequence delays
type ServiceConfig struct {
	SecondAttemptDelay time.Duration
	FeedbackDelay      time.Duration
}

// DefaultServiceConfig returns the production defaults
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		SecondAttemptDelay: time.Hour,
		FeedbackDelay:      6 * time.Hour,
	}
}

// Service runs the lead engagement sequence: a welcome message on form
// submission, a second attempt when the lead stays silent, and a feedback
// prompt later. Scheduled steps re-validate the form before sending, so a
// lead that converted or was cancelled in the meantime is left alone.
type Service struct {
	formRepo    conversion.FormRepository
	messageRepo conversion.ConversionMessageRepository
	messenger   Messenger
	scheduler   CallbackScheduler
	cfg         ServiceConfig
	logger      *zap.Logger
}

// NewService creates a conversion Service
func NewService(
	formRepo conversion.FormRepository,
	messageRepo conversion.ConversionMessageRepository,
	messenger Messenger,
	scheduler CallbackScheduler,
	cfg ServiceConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		formRepo:    formRepo,
		messageRepo: messageRepo,
		messenger:   messenger,
		scheduler:   scheduler,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreateForm registers a lead and kicks off the engagement sequence
func (s *Service) CreateForm(ctx context.Context, req CreateFormRequest) (*FormResponse, error) {
	form, err := conversion.NewForm(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.formRepo.Save(ctx, form); err != nil {
		return nil, err
	}

	if err := s.StartConversion(ctx, form.ID); err != nil {
		s.logger.Warn("welcome sequence failed, form stands",
			zap.String("form_id", form.ID.String()),
			zap.Error(err))
	}

	resp := ToFormResponse(form)
	return &resp, nil
}

// StartConversion sends the welcome message and schedules the follow-ups.
// A queued send means the lead's conversation window is closed; the queued
// message is cancelled and a template goes out instead, since templates
// bypass the window.
func (s *Service) StartConversion(ctx context.Context, formID uuid.UUID) error {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return err
	}
	if !form.IsOpen() {
		return shared.ErrAlreadyProcessed
	}
	if existing, err := s.messageRepo.FindByFormAndType(ctx, formID, conversion.MessageTypeWelcome); err == nil && existing != nil {
		return shared.ErrAlreadyProcessed
	}

	greeting := fmt.Sprintf("Olá%s! Recebemos seu pedido de contato na Petalia Flores. Como podemos ajudar? 🌷", greetingName(form.Name))
	result, err := s.messenger.SendText(ctx, form.Phone, greeting)
	if err != nil {
		return err
	}

	if result.Queued() {
		if err := s.messenger.CancelMessage(ctx, result.ExternalID); err != nil {
			s.logger.Warn("failed to cancel queued welcome",
				zap.String("external_id", result.ExternalID),
				zap.Error(err))
		}
		result, err = s.messenger.SendTemplate(ctx, form.Phone, TemplateWelcomeFallback, map[string]string{
			"nome": form.Name,
		})
		if err != nil {
			return err
		}
	}

	message, err := conversion.NewConversionMessage(form.ID, conversion.MessageTypeWelcome, result.ExternalID, result.SessionID)
	if err != nil {
		return err
	}
	if err := s.messageRepo.Save(ctx, message); err != nil {
		return err
	}

	payload := map[string]string{"form_id": form.ID.String()}
	if err := s.scheduler.Schedule(ctx, WebhookPathSecondAttempt, payload, s.cfg.SecondAttemptDelay); err != nil {
		s.logger.Error("failed to schedule second attempt", zap.String("form_id", form.ID.String()), zap.Error(err))
	}
	if err := s.scheduler.Schedule(ctx, WebhookPathFeedback, payload, s.cfg.FeedbackDelay); err != nil {
		s.logger.Error("failed to schedule feedback", zap.String("form_id", form.ID.String()), zap.Error(err))
	}

	return nil
}

// HandleSecondAttempt is the scheduled follow-up for silent leads. It skips
// when the form is no longer open, when staff already engaged, or when the
// lead replied in the welcome session.
func (s *Service) HandleSecondAttempt(ctx context.Context, formID uuid.UUID) error {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return err
	}
	if !form.IsOpen() || form.Status == conversion.FormStatusInContact {
		return shared.ErrAlreadyProcessed
	}
	if existing, err := s.messageRepo.FindByFormAndType(ctx, formID, conversion.MessageTypeSecondAttempt); err == nil && existing != nil {
		return shared.ErrAlreadyProcessed
	}

	welcome, err := s.messageRepo.FindByFormAndType(ctx, formID, conversion.MessageTypeWelcome)
	if err != nil {
		return err
	}

	replied, err := s.leadReplied(ctx, welcome.SessionID)
	if err != nil {
		return err
	}
	if replied {
		return shared.ErrAlreadyProcessed
	}

	result, err := s.messenger.SendText(ctx, form.Phone,
		"Oi! Passando para saber se ainda podemos ajudar com as flores. Seguimos à disposição. 🌻")
	if err != nil {
		return err
	}

	message, err := conversion.NewConversionMessage(form.ID, conversion.MessageTypeSecondAttempt, result.ExternalID, result.SessionID)
	if err != nil {
		return err
	}
	return s.messageRepo.Save(ctx, message)
}

// HandleFeedback is the scheduled feedback prompt. Only leads that were
// actually engaged (any reply or staff contact) receive it.
func (s *Service) HandleFeedback(ctx context.Context, formID uuid.UUID) error {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return err
	}
	if form.Status == conversion.FormStatusCancelled {
		return shared.ErrAlreadyProcessed
	}
	if existing, err := s.messageRepo.FindByFormAndType(ctx, formID, conversion.MessageTypeFeedback); err == nil && existing != nil {
		return shared.ErrAlreadyProcessed
	}

	// NOT_CONVERTED means staff never engaged; the lead must have replied in
	// the welcome session for the prompt to make sense.
	if form.Status == conversion.FormStatusNotConverted {
		welcome, err := s.messageRepo.FindByFormAndType(ctx, formID, conversion.MessageTypeWelcome)
		if err != nil {
			return err
		}
		replied, err := s.leadReplied(ctx, welcome.SessionID)
		if err != nil {
			return err
		}
		if !replied {
			return shared.ErrAlreadyProcessed
		}
	}

	result, err := s.messenger.SendText(ctx, form.Phone,
		"Como foi sua experiência com a Petalia Flores? Sua opinião nos ajuda muito! Responda esta mensagem com seu comentário. 💐")
	if err != nil {
		return err
	}

	message, err := conversion.NewConversionMessage(form.ID, conversion.MessageTypeFeedback, result.ExternalID, result.SessionID)
	if err != nil {
		return err
	}
	return s.messageRepo.Save(ctx, message)
}

// RecordFeedbackReply stores the customer's answer to a feedback prompt.
// Called by the inbound-message webhook; duplicates are rejected.
func (s *Service) RecordFeedbackReply(ctx context.Context, externalID, text string, at time.Time) error {
	message, err := s.messageRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if err := message.RecordReply(text, at); err != nil {
		return err
	}
	return s.messageRepo.Save(ctx, message)
}

// GetForm loads a single form with its sent messages
func (s *Service) GetForm(ctx context.Context, formID uuid.UUID) (*FormDetailResponse, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}

	resp := &FormDetailResponse{
		FormResponse: ToFormResponse(form),
		Messages:     make([]MessageResponse, len(messages)),
	}
	for i := range messages {
		resp.Messages[i] = ToMessageResponse(&messages[i])
	}
	return resp, nil
}

// ListForms returns a filtered page of forms
func (s *Service) ListForms(ctx context.Context, filter shared.Filter) ([]FormResponse, int64, error) {
	forms, total, err := s.formRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FormResponse, len(forms))
	for i := range forms {
		responses[i] = ToFormResponse(&forms[i])
	}
	return responses, total, nil
}

// UpdateFormStatus applies a staff decision on the lead
func (s *Service) UpdateFormStatus(ctx context.Context, formID uuid.UUID, status conversion.FormStatus, reason string) (*FormResponse, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	switch status {
	case conversion.FormStatusInContact:
		err = form.MarkInContact()
	case conversion.FormStatusConverted:
		err = form.MarkConverted()
	case conversion.FormStatusCancelled:
		err = form.Cancel(reason)
	default:
		err = shared.NewDomainError("INVALID_STATUS", "Status de formulário inválido")
	}
	if err != nil {
		return nil, err
	}

	if err := s.formRepo.Save(ctx, form); err != nil {
		return nil, err
	}

	resp := ToFormResponse(form)
	return &resp, nil
}

// leadReplied checks the session for any inbound message
func (s *Service) leadReplied(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	messages, err := s.messenger.ListMessages(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for i := range messages {
		if messages[i].Inbound() {
			return true, nil
		}
	}
	return false, nil
}

func greetingName(name string) string {
	if name == "" {
		return ""
	}
	return " " + name
}

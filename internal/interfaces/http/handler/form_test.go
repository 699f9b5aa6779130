package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	conversionapp "github.com/petalia/backend/internal/application/conversion"
	"github.com/petalia/backend/internal/domain/conversion"
	"github.com/petalia/backend/internal/domain/shared"
)

func setupFormHandler() (*FormHandler, *mockFormRepo, *mockMessageRepo, *mockMessenger, *mockScheduler) {
	formRepo := new(mockFormRepo)
	messageRepo := new(mockMessageRepo)
	messenger := new(mockMessenger)
	scheduler := new(mockScheduler)

	log := zap.NewNop()
	service := conversionapp.NewService(formRepo, messageRepo, messenger, scheduler,
		conversionapp.DefaultServiceConfig(), log)
	return NewFormHandler(service, log), formRepo, messageRepo, messenger, scheduler
}

func newTestForm(t *testing.T) *conversion.Form {
	t.Helper()
	form, err := conversion.NewForm("Beatriz Ramos", "+5511988887777", "bia@example.com")
	require.NoError(t, err)
	return form
}

func TestFormHandler_Create_StartsWelcomeFlow(t *testing.T) {
	handler, formRepo, messageRepo, messenger, scheduler := setupFormHandler()

	form := newTestForm(t)
	formRepo.On("Save", mock.Anything, mock.AnythingOfType("*conversion.Form")).Return(nil)
	formRepo.On("FindByID", mock.Anything, mock.Anything).Return(form, nil)
	messageRepo.On("FindByFormAndType", mock.Anything, mock.Anything, conversion.MessageTypeWelcome).
		Return(nil, shared.ErrNotFound)
	messenger.On("SendText", mock.Anything, form.Phone, mock.Anything).
		Return(&conversionapp.SendResult{ExternalID: "wamid.10", SessionID: "sess-10", Status: "SENT"}, nil)
	messageRepo.On("Save", mock.Anything, mock.AnythingOfType("*conversion.ConversionMessage")).Return(nil)
	scheduler.On("Schedule", mock.Anything, conversionapp.WebhookPathSecondAttempt, mock.Anything, mock.Anything).
		Return(nil)
	scheduler.On("Schedule", mock.Anything, conversionapp.WebhookPathFeedback, mock.Anything, mock.Anything).
		Return(nil)

	router := setupTestRouter()
	router.POST("/forms", handler.Create)

	w := performJSON(t, router, http.MethodPost, "/forms", gin.H{
		"name":  "Beatriz Ramos",
		"phone": "+5511988887777",
		"email": "bia@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	messenger.AssertExpectations(t)
	scheduler.AssertExpectations(t)
}

func TestFormHandler_Create_StandsWhenWelcomeFails(t *testing.T) {
	handler, formRepo, _, messenger, _ := setupFormHandler()

	formRepo.On("Save", mock.Anything, mock.AnythingOfType("*conversion.Form")).Return(nil)
	formRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.POST("/forms", handler.Create)

	w := performJSON(t, router, http.MethodPost, "/forms", gin.H{
		"name":  "Beatriz Ramos",
		"phone": "+5511988887777",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	messenger.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
}

func TestFormHandler_Create_MissingPhone(t *testing.T) {
	handler, formRepo, _, _, _ := setupFormHandler()

	router := setupTestRouter()
	router.POST("/forms", handler.Create)

	w := performJSON(t, router, http.MethodPost, "/forms", gin.H{"name": "Beatriz Ramos"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Nome e telefone são obrigatórios", resp.Error.Message)
	formRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFormHandler_UpdateStatus(t *testing.T) {
	handler, formRepo, _, _, _ := setupFormHandler()

	form := newTestForm(t)
	formRepo.On("FindByID", mock.Anything, form.ID).Return(form, nil)
	formRepo.On("Save", mock.Anything, form).Return(nil)

	router := setupTestRouter()
	router.PUT("/forms/:id/status", handler.UpdateStatus)

	w := performJSON(t, router, http.MethodPut, "/forms/"+form.ID.String()+"/status",
		gin.H{"status": "IN_CONTACT"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, conversion.FormStatusInContact, form.Status)
	formRepo.AssertExpectations(t)
}

func TestFormHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	handler, _, _, _, _ := setupFormHandler()

	router := setupTestRouter()
	router.PUT("/forms/:id/status", handler.UpdateStatus)

	w := performJSON(t, router, http.MethodPut, "/forms/"+uuid.New().String()+"/status",
		gin.H{"status": "ARCHIVED"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFormHandler_GetByID_BadID(t *testing.T) {
	handler, _, _, _, _ := setupFormHandler()

	router := setupTestRouter()
	router.GET("/forms/:id", handler.GetByID)

	w := performJSON(t, router, http.MethodGet, "/forms/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orderingapp "github.com/petalia/backend/internal/application/ordering"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
)

func setupPaymentHandler(paymentRepo *mockPaymentRepo, orderRepo *mockOrderRepo, gateway *mockGateway) *PaymentHandler {
	service := orderingapp.NewPaymentService(paymentRepo, orderRepo, gateway, zap.NewNop())
	return NewPaymentHandler(service, zap.NewNop())
}

func newTestOrder(t *testing.T) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder("PED-0042", uuid.New(), "Mariana Souza", uuid.New(),
		"Buquê de girassóis", time.Now().Add(24*time.Hour), ordering.DeliveryPeriodMorning)
	require.NoError(t, err)
	return order
}

func newTestPayment(t *testing.T, orderID uuid.UUID) *ordering.Payment {
	t.Helper()
	payment, err := ordering.NewPayment(orderID, ordering.PaymentTypePix, decimal.NewFromInt(180))
	require.NoError(t, err)
	return payment
}

func TestPaymentHandler_Create_Success(t *testing.T) {
	paymentRepo := new(mockPaymentRepo)
	orderRepo := new(mockOrderRepo)
	gateway := new(mockGateway)
	handler := setupPaymentHandler(paymentRepo, orderRepo, gateway)

	order := newTestOrder(t)
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	gateway.On("CreateCharge", mock.Anything, mock.AnythingOfType("ordering.CreateChargeRequest")).
		Return(&orderingapp.ChargeResult{
			GatewayID:   "pref-123",
			Status:      "pending",
			CheckoutURL: "https://checkout.example/pref-123",
		}, nil)
	paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.Payment")).Return(nil)

	router := setupTestRouter()
	router.POST("/payments", handler.Create)

	w := performJSON(t, router, http.MethodPost, "/payments", gin.H{
		"order_id":    order.ID.String(),
		"type":        "PIX",
		"amount":      "180.00",
		"payer_email": "mariana@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	gateway.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentHandler_Create_RejectsUnknownType(t *testing.T) {
	handler := setupPaymentHandler(new(mockPaymentRepo), new(mockOrderRepo), new(mockGateway))

	router := setupTestRouter()
	router.POST("/payments", handler.Create)

	w := performJSON(t, router, http.MethodPost, "/payments", gin.H{
		"order_id": uuid.New().String(),
		"type":     "CHEQUE",
		"amount":   "180.00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_GatewayNotification_Processed(t *testing.T) {
	paymentRepo := new(mockPaymentRepo)
	gateway := new(mockGateway)
	handler := setupPaymentHandler(paymentRepo, new(mockOrderRepo), gateway)

	payment := newTestPayment(t, uuid.New())
	gateway.On("GetCharge", mock.Anything, "987654").Return(&orderingapp.ChargeStatus{
		Reference: payment.ID.String(),
		Status:    "approved",
		Paid:      true,
	}, nil)
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	paymentRepo.On("Save", mock.Anything, payment).Return(nil)
	paymentRepo.On("MarkPaid", mock.Anything, payment.ID, mock.AnythingOfType("time.Time")).Return(nil)

	router := setupTestRouter()
	router.POST("/webhooks/payments", handler.HandleGatewayNotification)

	w := performJSON(t, router, http.MethodPost, "/webhooks/payments", gin.H{
		"type":   "payment",
		"action": "payment.updated",
		"data":   gin.H{"id": "987654"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "987654", payment.GatewayID)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentHandler_GatewayNotification_IgnoresOtherTopics(t *testing.T) {
	gateway := new(mockGateway)
	handler := setupPaymentHandler(new(mockPaymentRepo), new(mockOrderRepo), gateway)

	router := setupTestRouter()
	router.POST("/webhooks/payments", handler.HandleGatewayNotification)

	w := performJSON(t, router, http.MethodPost, "/webhooks/payments", gin.H{
		"type": "merchant_order",
		"data": gin.H{"id": "555"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	gateway.AssertNotCalled(t, "GetCharge", mock.Anything, mock.Anything)
}

func TestPaymentHandler_GatewayNotification_AbsorbsUnknownCharge(t *testing.T) {
	gateway := new(mockGateway)
	handler := setupPaymentHandler(new(mockPaymentRepo), new(mockOrderRepo), gateway)

	gateway.On("GetCharge", mock.Anything, "111").Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.POST("/webhooks/payments", handler.HandleGatewayNotification)

	w := performJSON(t, router, http.MethodPost, "/webhooks/payments", gin.H{
		"type": "payment",
		"data": gin.H{"id": "111"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPaymentHandler_GatewayNotification_LegacyQueryFormat(t *testing.T) {
	gateway := new(mockGateway)
	handler := setupPaymentHandler(new(mockPaymentRepo), new(mockOrderRepo), gateway)

	gateway.On("GetCharge", mock.Anything, "222").Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.POST("/webhooks/payments", handler.HandleGatewayNotification)

	w := performJSON(t, router, http.MethodPost, "/webhooks/payments?topic=payment&id=222", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	gateway.AssertExpectations(t)
}

func TestPaymentHandler_Confirm(t *testing.T) {
	paymentRepo := new(mockPaymentRepo)
	handler := setupPaymentHandler(paymentRepo, new(mockOrderRepo), new(mockGateway))

	payment := newTestPayment(t, uuid.New())
	paymentRepo.On("MarkPaid", mock.Anything, payment.ID, mock.AnythingOfType("time.Time")).Return(nil)
	paymentRepo.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)

	router := setupTestRouter()
	router.POST("/payments/:id/confirm", handler.Confirm)

	w := performJSON(t, router, http.MethodPost, "/payments/"+payment.ID.String()+"/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	paymentRepo.AssertExpectations(t)
}

func TestPaymentHandler_Confirm_AlreadyPaid(t *testing.T) {
	paymentRepo := new(mockPaymentRepo)
	handler := setupPaymentHandler(paymentRepo, new(mockOrderRepo), new(mockGateway))

	paymentID := uuid.New()
	paymentRepo.On("MarkPaid", mock.Anything, paymentID, mock.AnythingOfType("time.Time")).
		Return(shared.ErrAlreadyProcessed)

	router := setupTestRouter()
	router.POST("/payments/:id/confirm", handler.Confirm)

	w := performJSON(t, router, http.MethodPost, "/payments/"+paymentID.String()+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

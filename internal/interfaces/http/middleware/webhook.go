package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petalia/backend/internal/infrastructure/cache"
	"github.com/petalia/backend/internal/infrastructure/scheduler"
	"github.com/petalia/backend/internal/interfaces/http/dto"
)

const (
	maxWebhookBody = 1 << 20 // 1MB

	// Deliveries are retried by the sender for at most a day; after that a
	// duplicate cannot arrive and the dedupe key may expire.
	webhookDedupeTTL = 24 * time.Hour
)

// SignedCallback authenticates scheduled-callback deliveries. The body must
// carry a valid HMAC signature, and each distinct delivery is processed at
// most once: duplicates are answered 200 without reaching the handler, so
// sender retries stay harmless. A delivery whose handler fails releases its
// dedupe key, so the sender's retry is processed rather than absorbed.
func SignedCallback(secret string, store cache.IdempotencyStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Corpo da requisição ilegível"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		signature := c.GetHeader(scheduler.SignatureHeader)
		if !scheduler.VerifySignature([]byte(secret), body, signature) {
			logger.Warn("webhook signature rejected",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Assinatura inválida"))
			return
		}

		key := deliveryKey(c.Request.URL.Path, body)
		first, err := store.MarkProcessed(c.Request.Context(), key, webhookDedupeTTL)
		if err != nil {
			// Store outage: let the delivery through, handlers re-validate
			// state and absorb duplicates on their own.
			logger.Warn("idempotency store unavailable, processing without dedupe",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		} else if !first {
			c.AbortWithStatusJSON(http.StatusOK,
				dto.NewSuccessResponse(gin.H{"duplicate": true}))
			return
		}

		c.Next()

		// A non-2xx answer makes the sender retry the same delivery; release
		// the key so the retry reaches the handler instead of the duplicate
		// short-circuit.
		status := c.Writer.Status()
		if first && (status < http.StatusOK || status >= http.StatusMultipleChoices) {
			if err := store.Forget(c.Request.Context(), key); err != nil {
				logger.Warn("failed to release dedupe key after handler failure",
					zap.String("path", c.Request.URL.Path),
					zap.Int("status", status),
					zap.Error(err))
			}
		}
	}
}

func deliveryKey(path string, body []byte) string {
	sum := sha256.Sum256(append([]byte(path+"\n"), body...))
	return hex.EncodeToString(sum[:])
}

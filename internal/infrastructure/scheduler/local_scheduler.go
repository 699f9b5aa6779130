package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LocalScheduler fires callbacks from in-process timers instead of an
// external service. Pending jobs are lost on restart, so it is only suitable
// for development and tests.
type LocalScheduler struct {
	callbackBaseURL string
	secret          []byte
	httpClient      *http.Client
	logger          *zap.Logger

	cancel    context.CancelFunc
	baseCtx   context.Context
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewLocalScheduler creates a LocalScheduler
func NewLocalScheduler(callbackBaseURL, callbackSecret string, logger *zap.Logger) *LocalScheduler {
	return &LocalScheduler{
		callbackBaseURL: strings.TrimRight(callbackBaseURL, "/"),
		secret:          []byte(callbackSecret),
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		logger:          logger.Named("scheduler.local"),
	}
}

// Start makes the scheduler accept jobs until Stop is called
func (s *LocalScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.isRunning = true
	s.baseCtx = ctx
}

// Stop cancels pending timers and waits for in-flight callbacks
func (s *LocalScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}

// Schedule registers a delayed POST to the given webhook path
func (s *LocalScheduler) Schedule(ctx context.Context, path string, payload any, delay time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("scheduler: failed to marshal payload: %w", err)
	}

	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("scheduler: not running")
	}
	runCtx := s.baseCtx
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-runCtx.Done():
			return
		case <-timer.C:
		}

		s.fire(runCtx, path, body)
	}()

	return nil
}

func (s *LocalScheduler) fire(ctx context.Context, path string, body []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.callbackBaseURL+path, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to build callback request", zap.String("path", path), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, Sign(s.secret, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("callback delivery failed", zap.String("path", path), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		s.logger.Warn("callback rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
	}
}

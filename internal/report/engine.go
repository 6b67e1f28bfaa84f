package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/config"
	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// maxErrorBody - сколько байт ответа движка попадает в текст ошибки
const maxErrorBody = 512

// statusError - ответ движка с кодом вне 2xx
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("report engine returned %d: %s", e.code, e.body)
}

// countsAsSuccess: отмена запроса клиентом и ответы 4xx не говорят о сбое движка
// и не должны размыкать автомат
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code >= 400 && statusErr.code < 500
	}
	return false
}

type renderRequest struct {
	Template string `json:"template"`
	Format   string `json:"format"`
}

// HTTPEngine - клиент внешнего движка отчетов. Создается один раз при старте
// и закрывается при остановке приложения.
type HTTPEngine struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

func NewHTTPEngine(cfg config.ReportConfig, logger *zap.Logger) *HTTPEngine {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures <= 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:         "report-engine",
		Timeout:      cfg.BreakerOpenTimeout,
		IsSuccessful: countsAsSuccess,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &HTTPEngine{
		baseURL: strings.TrimRight(cfg.EngineURL, "/"),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		breaker: breaker,
		logger:  logger,
	}
}

// Ping проверяет доступность движка через /health
func (e *HTTPEngine) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("report engine unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("report engine health check returned %d", resp.StatusCode)
	}
	return nil
}

func (e *HTTPEngine) Render(ctx context.Context, templateRef string, format domain.ReportFormat) ([]byte, error) {
	body, err := json.Marshal(renderRequest{Template: templateRef, Format: string(format)})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := e.breaker.Execute(func() ([]byte, error) {
		return e.doRender(ctx, body)
	})
	if err != nil {
		return nil, fmt.Errorf("render %s as %s: %w", templateRef, format, err)
	}

	e.logger.Debug("report rendered",
		zap.String("template", templateRef),
		zap.String("format", string(format)),
		zap.Int("bytes", len(content)),
		zap.Duration("duration", time.Since(start)),
	)
	return content, nil
}

func (e *HTTPEngine) doRender(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(snippet))}
	}

	return io.ReadAll(resp.Body)
}

// Close освобождает простаивающие соединения
func (e *HTTPEngine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}

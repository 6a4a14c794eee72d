package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leave-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

type Client interface {
	Notify(ctx context.Context, n PayrollNotification) error
}

type httpClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewClient posts notifications to url. A nil client gets a 5s timeout.
func NewClient(url string, client *http.Client, logger ...*zap.Logger) Client {
	l := zap.L().Named("webhook.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("webhook.client")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &httpClient{url: url, client: client, logger: l}
}

func (c *httpClient) Notify(ctx context.Context, n PayrollNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode payroll notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("payroll webhook call failed", zap.String("url", c.url), zap.Error(err))
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payroll webhook returned status %d", resp.StatusCode)
	}

	c.logger.Debug("payroll webhook delivered",
		zap.Int64("employee_id", n.EmployeeID),
		zap.String("event", n.Event),
	)
	return nil
}

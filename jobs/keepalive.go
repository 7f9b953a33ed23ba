package jobs

import (
	"context"
	"fmt"
	"time"

	"rentdesk/services/logger"

	"github.com/go-resty/resty/v2"
)

// KeepAlive pings the public /ping endpoint so idle hosting does not put
// the server to sleep.
type KeepAlive struct {
	client *resty.Client
	url    string
	logger logger.Logger
}

func NewKeepAlive(url string, log logger.Logger) *KeepAlive {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)
	return &KeepAlive{client: client, url: url, logger: log}
}

func (k *KeepAlive) Ping(ctx context.Context) error {
	resp, err := k.client.R().SetContext(ctx).Get(k.url)
	if err != nil {
		k.logger.Error("keep-alive ping %s: %v", k.url, err)
		return err
	}
	if resp.IsError() {
		k.logger.Error("keep-alive ping %s: status %d", k.url, resp.StatusCode())
		return fmt.Errorf("keep-alive ping: status %d", resp.StatusCode())
	}
	k.logger.Debug("keep-alive ping response: %s", resp.String())
	return nil
}

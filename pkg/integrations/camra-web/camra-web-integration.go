package camraweb

import (
	"time"

	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
)

const IntegrationName = "camra_web"

type CamraWebIntegration struct {
	url       string
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewCamraWebIntegration(conf configs.Scraper, logger *zap.Logger) *CamraWebIntegration {
	return &CamraWebIntegration{url: conf.URL, userAgent: conf.UserAgent, timeout: conf.Timeout, logger: logger}
}

func (c *CamraWebIntegration) Name() string {
	return IntegrationName
}

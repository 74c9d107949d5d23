package integrations

import (
	"errors"

	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
	"droscher.com/LondonBrew/pkg/integrations/camra-web"
	"droscher.com/LondonBrew/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type Integration interface {
	Name() string
	ScrapeBreweries() (*model.ScrapeResult, error)
}

func GetIntegration(name string, conf *configs.Config, logger *zap.Logger) Integration {
	if name == camraweb.IntegrationName {
		return camraweb.NewCamraWebIntegration(conf.Scraper, logger.With(zap.String("integration", name)))
	}

	return nil
}

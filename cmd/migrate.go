package cmd

import (
	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
	"droscher.com/LondonBrew/pkg/model"
	"droscher.com/LondonBrew/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".LondonBrew.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := newDevelopmentLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	err = repo.DB.AutoMigrate(&model.ScrapeRun{}, &model.BreweryEntry{})
	if err != nil {
		return err
	}

	logger.Info("migrations complete")

	return nil
}

func newDevelopmentLogger(ctx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

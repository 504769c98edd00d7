package es

import (
	"PedGuard/internal/api/config"
	"PedGuard/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

var Client *elasticsearch.TypedClient

var SuggestionIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient connects the Elasticsearch client. Deployments that run
// without a search cluster set elastic.enabled=false and the suggestion
// listing falls back to store-side LIKE matching.
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	SuggestionIndex = elasticCfg.Index

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	info, err := Client.Info().Do(context.Background())
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	log.Info("Connected to Elasticsearch", "version", info.Version.Int)
	return nil
}

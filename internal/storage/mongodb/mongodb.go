package mongodb

import (
	"context"
	"log/slog"
	"time"

	"citygis/internal/config"
	"citygis/pkg/e"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	Client    *mongo.Client
	Incidents *IncidentRepo
}

func NewMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	logger.Info("Connecting to Mongo", slog.String("db", cfg.Mongo.Database))

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Error("Failed to connect to Mongo", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.mongo.NewMongo.Connect", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping Mongo", slog.String("error", err.Error()))
		_ = client.Disconnect(context.Background())
		return nil, e.Wrap("storage.mongo.NewMongo.Ping", err)
	}
	logger.Info("Connected to Mongo successfully")

	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	return &Mongo{
		Client:    client,
		Incidents: NewIncidentRepo(coll, logger),
	}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

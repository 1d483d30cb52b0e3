package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"citygis/internal/domain"
	"citygis/pkg/e"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// incidentDoc is the collection-level shape. The hex <-> ObjectID
// conversion happens here so the rest of the code only sees string ids.
type incidentDoc struct {
	ID          primitive.ObjectID      `bson:"_id,omitempty"`
	Title       string                  `bson:"title"`
	Description string                  `bson:"description"`
	Category    domain.IncidentCategory `bson:"category"`
	Status      domain.IncidentStatus   `bson:"status"`
	Location    locationDoc             `bson:"location"`
	PostedBy    string                  `bson:"postedBy,omitempty"`
	CreatedAt   time.Time               `bson:"createdAt"`
}

type locationDoc struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

func (d incidentDoc) toDomain() *domain.Incident {
	return &domain.Incident{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Status:      d.Status,
		Location: domain.Location{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
		},
		PostedBy:  d.PostedBy,
		CreatedAt: d.CreatedAt,
	}
}

type IncidentRepo struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewIncidentRepo(coll *mongo.Collection, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{coll: coll, logger: logger}
}

func (r *IncidentRepo) Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error) {
	const op = "mongo.Incident.Create"

	doc := incidentDoc{
		Title:       inc.Title,
		Description: inc.Description,
		Category:    inc.Category,
		Status:      inc.Status,
		Location: locationDoc{
			Latitude:  inc.Location.Latitude,
			Longitude: inc.Location.Longitude,
		},
		PostedBy:  inc.PostedBy,
		CreatedAt: inc.CreatedAt,
	}
	if doc.Status == "" {
		doc.Status = domain.StatusReported
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("mongo insert failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected inserted id type: %w", op, e.ErrInternal)
	}
	doc.ID = oid

	return doc.toDomain(), nil
}

func (r *IncidentRepo) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "mongo.Incident.GetByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var doc incidentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err != mongo.ErrNoDocuments {
			r.logger.Error("mongo find failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return doc.toDomain(), nil
}

func (r *IncidentRepo) List(ctx context.Context) ([]*domain.Incident, error) {
	const op = "mongo.Incident.List"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("mongo find failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer cur.Close(ctx)

	incidents := make([]*domain.Incident, 0, 16)
	for cur.Next(ctx) {
		var doc incidentDoc
		if err := cur.Decode(&doc); err != nil {
			r.logger.Error("mongo decode failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		r.logger.Error("mongo cursor err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return incidents, nil
}

func (r *IncidentRepo) UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error {
	const op = "mongo.Incident.UpdateStatus"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		r.logger.Error("mongo update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// DeleteByID removes a document and reports whether one existed.
// A missing id is not an error; this is what makes the compensating
// delete idempotent.
func (r *IncidentRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	const op = "mongo.Incident.DeleteByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("mongo delete failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return false, e.WrapError(ctx, op, err)
	}

	return res.DeletedCount > 0, nil
}

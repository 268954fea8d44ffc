package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"receivables_api/internal/models"
)

// ReceivableStore is the gateway to the receivables collection. Implementations
// surface store failures as opaque errors; absence is receivables.ErrNotFound.
type ReceivableStore interface {
	Insert(ctx context.Context, rec models.Receivable) (primitive.ObjectID, error)
	FindAll(ctx context.Context, sortField string) ([]models.Receivable, error)
	FindOne(ctx context.Context, id primitive.ObjectID) (models.Receivable, error)
	UpdateOne(ctx context.Context, id primitive.ObjectID, rec models.Receivable) (int64, error)
	DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

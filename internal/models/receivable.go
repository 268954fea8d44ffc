package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Receivable is the stored shape of one conta a receber. Field names in the
// collection mirror the Portuguese names used on the JSON surface.
type Receivable struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nome"`
	TaxID     *string            `bson:"cpf"`
	Phone     string             `bson:"telefone"`
	Amount    float64            `bson:"valor"`
	DueDate   time.Time          `bson:"vencimento"`
	CreatedAt time.Time          `bson:"cadastro"`
}

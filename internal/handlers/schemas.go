package handlers

import (
	"errors"

	"receivables_api/internal/models"
	"receivables_api/internal/utils"
)

// receivableRequest is the create/update body. The id field is accepted on
// updates but never persisted; cadastro is not accepted at all.
type receivableRequest struct {
	ID      string       `json:"id,omitempty"`
	Name    string       `json:"nome"`
	TaxID   *string      `json:"cpf"`
	Phone   string       `json:"telefone"`
	Amount  *float64     `json:"valor"`
	DueDate *models.Date `json:"vencimento"`
}

// toRecord validates the required fields and normalizes the free-text ones.
// The returned record carries no ID and no CreatedAt.
func (req *receivableRequest) toRecord() (models.Receivable, error) {
	name := utils.CollapseSpaces(req.Name)
	if name == "" {
		return models.Receivable{}, errors.New("nome is required")
	}
	phone := utils.DigitsOnly(req.Phone)
	if phone == "" {
		return models.Receivable{}, errors.New("telefone is required")
	}
	if req.Amount == nil {
		return models.Receivable{}, errors.New("valor is required")
	}
	if req.DueDate == nil {
		return models.Receivable{}, errors.New("vencimento is required")
	}

	var cpf *string
	if req.TaxID != nil {
		v := utils.DigitsOnly(*req.TaxID)
		cpf = &v
	}

	return models.Receivable{
		Name:    name,
		TaxID:   cpf,
		Phone:   phone,
		Amount:  *req.Amount,
		DueDate: req.DueDate.Time,
	}, nil
}

type receivableResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nome"`
	TaxID     *string         `json:"cpf"`
	Phone     string          `json:"telefone"`
	Amount    float64         `json:"valor"`
	DueDate   models.Date     `json:"vencimento"`
	CreatedAt models.DateTime `json:"cadastro"`
}

func toResponse(rec models.Receivable) receivableResponse {
	return receivableResponse{
		ID:        rec.ID.Hex(),
		Name:      rec.Name,
		TaxID:     rec.TaxID,
		Phone:     rec.Phone,
		Amount:    rec.Amount,
		DueDate:   models.NewDate(rec.DueDate),
		CreatedAt: models.DateTime{Time: rec.CreatedAt},
	}
}

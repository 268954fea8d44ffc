package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"receivables_api/internal/config/connections/s3"
	"receivables_api/internal/models"
)

const (
	SheetName   = "Contas a Receber"
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{"ID", "Nome", "CPF", "Telefone", "Valor", "Vencimento", "Cadastro"}

type Service struct {
	S3 *s3.S3
}

func New(s3c *s3.S3) *Service {
	return &Service{S3: s3c}
}

// BuildWorkbook renders one row per receivable under a header row. Dates use
// the same DD/MM/YYYY formats as the JSON surface.
func BuildWorkbook(recs []models.Receivable) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, rec := range recs {
		cpf := ""
		if rec.TaxID != nil {
			cpf = *rec.TaxID
		}
		values := []any{
			rec.ID.Hex(),
			rec.Name,
			cpf,
			rec.Phone,
			rec.Amount,
			rec.DueDate.Format(models.DateLayout),
			rec.CreatedAt.Format(models.DateTimeLayout),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Export builds the workbook and uploads it to the bucket, returning the
// s3:// path of the stored object.
func (s *Service) Export(ctx context.Context, recs []models.Receivable) (string, error) {
	f, err := BuildWorkbook(recs)
	if err != nil {
		return "", fmt.Errorf("build workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("serialize workbook: %w", err)
	}

	key := fmt.Sprintf("exports/%d-receivables-%s.xlsx", time.Now().UnixNano(), uuid.NewString())

	_, err = s.S3.Client.PutObject(ctx, s.S3.Bucket, key, buf, int64(buf.Len()),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("store workbook: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.S3.Bucket, key), nil
}

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/models"
)

const exportURLExpiry = 24 * time.Hour

// ExportService renders grocery lists to CSV and uploads them to S3.
type ExportService struct {
	grocery  *GroceryService
	s3Config *appconfig.S3Config
}

func NewExportService(grocery *GroceryService, s3Config *appconfig.S3Config) *ExportService {
	return &ExportService{grocery: grocery, s3Config: s3Config}
}

// renderCSV writes one row per grocery item, trips in order.
func renderCSV(list *models.GroceryList) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"trip", "from", "to", "category", "ingredient", "needed", "unit", "after_pantry", "checked"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, trip := range list.Trips {
		for _, item := range trip.Items {
			row := []string{
				strconv.Itoa(trip.TripIndex + 1),
				trip.DateRange.From,
				trip.DateRange.To,
				item.CategoryName,
				item.IngredientName,
				strconv.FormatFloat(item.Needed.Amount, 'f', -1, 64),
				string(item.Needed.Unit),
				strconv.FormatFloat(item.AfterPantry.Amount, 'f', -1, 64),
				strconv.FormatBool(item.Checked),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export uploads the list as CSV and returns a presigned download URL.
func (s *ExportService) Export(ctx context.Context, userID, listID uuid.UUID) (string, error) {
	list, err := s.grocery.Get(ctx, userID, listID)
	if err != nil {
		return "", err
	}

	data, err := renderCSV(list)
	if err != nil {
		return "", fmt.Errorf("failed to render CSV: %w", err)
	}

	objectKey := fmt.Sprintf("grocery-exports/%s/%s.csv", userID, list.ID)
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[ExportService] uploaded grocery export %s", objectKey)

	return s.s3Config.GeneratePresignedURL(ctx, objectKey, exportURLExpiry)
}

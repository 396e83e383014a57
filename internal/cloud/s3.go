package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rupturahq/ruptura/internal/domain"
)

// ReportExporter uploads damage-assessment reports to S3 for downstream
// analysis and hands back a presigned download URL.
type ReportExporter struct {
	svc    *s3.Client
	bucket string
	ctx    context.Context
}

func NewReportExporter(region, bucket string) (*ReportExporter, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &ReportExporter{
		svc:    s3.NewFromConfig(cfg),
		bucket: bucket,
		ctx:    ctx,
	}, nil
}

type assessmentReport struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Reading     domain.SensorReading    `json:"reading"`
	Assessment  domain.DamageAssessment `json:"assessment"`
}

// UploadAssessmentReport serializes the latest reading/assessment pair for a
// sensor, stores it under reports/<sensor>/<timestamp>.json and returns a
// presigned URL valid for one hour.
func (e *ReportExporter) UploadAssessmentReport(reading domain.SensorReading, assessment domain.DamageAssessment) (string, error) {
	report := assessmentReport{
		GeneratedAt: time.Now().UTC(),
		Reading:     reading,
		Assessment:  assessment,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	key := fmt.Sprintf("reports/%s/%s.json", assessment.SensorID,
		assessment.AssessedAt.UTC().Format("20060102T150405Z"))

	input := &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	}

	if _, err := e.svc.PutObject(e.ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	presignClient := s3.NewPresignClient(e.svc)
	presignInput := &s3.GetObjectInput{
		Bucket: aws.String(e.bucket),
		Key:    aws.String(key),
	}

	presignResult, err := presignClient.PresignGetObject(e.ctx, presignInput, func(opts *s3.PresignOptions) {
		opts.Expires = 1 * time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignResult.URL, nil
}

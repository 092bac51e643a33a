package utils

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// SESMailer sends notification emails through AWS SES. It implements the
// services.Mailer contract: SendEmail reports failure instead of returning an
// error so callers can treat delivery as best-effort.
type SESMailer struct {
	client *ses.Client
	sender string
	logger *zap.Logger
}

func NewSESMailer(logger *zap.Logger) (*SESMailer, error) {
	region := os.Getenv("AWS_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		sender: os.Getenv("SES_EMAIL"),
		logger: logger.Named("mailer"),
	}, nil
}

func (m *SESMailer) SendEmail(to, subject, htmlBody string) bool {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		if m.logger != nil {
			m.logger.Error("SES send failed", zap.String("to", to), zap.Error(err))
		} else {
			log.Printf("SES send error: %v", err)
		}
		return false
	}
	return true
}

// Package mailer sends plain-text email through AWS SES.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SendEmailAPI is the subset of the SES client used here.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Message struct {
	To      string
	Subject string
	Text    string
}

type SESMailer struct {
	client SendEmailAPI
	sender string
}

// Options configure the SES client. Static keys are optional; without them
// the default AWS credential chain is used.
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Sender          string
}

func NewSESMailer(ctx context.Context, opts Options) (*SESMailer, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return NewWithClient(ses.NewFromConfig(awsCfg), opts.Sender), nil
}

func NewWithClient(client SendEmailAPI, sender string) *SESMailer {
	return &SESMailer{client: client, sender: sender}
}

func (m *SESMailer) Send(ctx context.Context, msg Message) error {
	if m.sender == "" {
		return fmt.Errorf("sender email address is not configured")
	}
	if msg.To == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	input := &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(msg.Subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(msg.Text),
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

package snstopic

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

// SNS rejects subjects of 100 characters or more and subjects with line breaks.
const maxSubjectRunes = 99

type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type notifierRepository struct {
	client API
}

func NewNotifierRepository(client API) repository.NotifierRepository {
	return &notifierRepository{client: client}
}

// Publish sends the notification to the topic ARN given as destination.
func (r *notifierRepository) Publish(ctx context.Context, destination string, n *entity.Notification) error {
	out, err := r.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(destination),
		Subject:  aws.String(subject(n.Subject)),
		Message:  aws.String(n.Body),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS topic %s: %w", destination, err)
	}

	log.Printf("Published SNS message %s", aws.ToString(out.MessageId))
	return nil
}

func subject(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > maxSubjectRunes {
		return string(runes[:maxSubjectRunes])
	}
	return s
}

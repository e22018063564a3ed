package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"philcali.me/recipebook/internal/notifications"
)

// SnsPublisher is the slice of the SNS client used for change events.
type SnsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type NotificationSNSService struct {
	Sns      SnsPublisher
	TopicArn string
}

func (n *NotificationSNSService) Notify(ctx context.Context, event notifications.ChangeEvent) error {
	_, err := n.Sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.TopicArn),
		Subject:  aws.String("Recipe " + string(event.Action)),
		Message:  aws.String(event.Message()),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"action": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(event.Action)),
			},
			"recipeId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Recipe.Id),
			},
		},
	})
	return err
}

func NewNotificationSNSService(client SnsPublisher, topicArn string) notifications.Notifier {
	return &NotificationSNSService{
		Sns:      client,
		TopicArn: topicArn,
	}
}

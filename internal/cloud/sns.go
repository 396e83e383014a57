package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"

	"github.com/rupturahq/ruptura/internal/ledger"
)

// CrisisNotifier relays ledger notification events to the external crisis
// management system over SNS. It subscribes to the ledger as an observer and
// only reacts to the crisis-notification event.
type CrisisNotifier struct {
	svc      *sns.Client
	topicArn string
	ctx      context.Context
}

func NewCrisisNotifier(region, topicArn string) (*CrisisNotifier, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &CrisisNotifier{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		ctx:      ctx,
	}, nil
}

func (n *CrisisNotifier) SendAlert(subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	result, err := n.svc.Publish(n.ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}

	log.Info().Str("message_id", aws.ToString(result.MessageId)).Msg("crisis alert published")
	return nil
}

func (n *CrisisNotifier) OnSensorDataReceived(e ledger.SensorDataReceived) {}
func (n *CrisisNotifier) OnDamageAssessed(e ledger.DamageAssessed)         {}
func (n *CrisisNotifier) OnEmergencyTriggered(e ledger.EmergencyTriggered) {}

// OnCrisisSystemNotified publishes the alert. The ledger has already counted
// the notification; a publish failure is logged and not retried here, the
// SNS topic's own retry policy owns redelivery.
func (n *CrisisNotifier) OnCrisisSystemNotified(e ledger.CrisisSystemNotified) {
	subject := fmt.Sprintf("Seismic Damage Alert: %s", e.SensorID)
	message := fmt.Sprintf(
		"Damage Assessment Notification\n\n"+
			"Sensor: %s\n"+
			"Severity Level: %d/5\n"+
			"Urgency Score: %d/100\n"+
			"Time: %s\n\n"+
			"Dispatch has been recorded on the assessment ledger.",
		e.SensorID,
		e.SeverityLevel,
		e.UrgencyScore,
		e.Timestamp.Format("2006-01-02 15:04:05 MST"),
	)

	if err := n.SendAlert(subject, message); err != nil {
		log.Error().Err(err).Str("sensor_id", e.SensorID).Msg("crisis notification failed")
	}
}

var _ ledger.Observer = (*CrisisNotifier)(nil)

package mailer

import (
	"context"
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/requests"
	"crooly-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	exchange string
	key      string
	message  amqp091.Publishing
	err      error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.message = msg
	return f.err
}

func TestMailerService_SendEmail(t *testing.T) {
	payload := &requests.EmailPayload{
		Subject:  constvars.EmailInvitationSubjectMessage,
		From:     "no-reply@crooly.cl",
		To:       []string{"cliente@minera.cl"},
		HTMLCode: "PGh0bWw+",
		Encoded:  true,
	}

	t.Run("Publishes Persistent JSON Message", func(t *testing.T) {
		publisher := &fakePublisher{}
		service := NewMailerServiceWithPublisher(publisher, "crooly_mailer", zap.NewNop())

		err := service.SendEmail(context.Background(), payload)
		require.NoError(t, err)

		assert.Equal(t, "", publisher.exchange)
		assert.Equal(t, "crooly_mailer", publisher.key)
		assert.Equal(t, constvars.MIMEApplicationJSON, publisher.message.ContentType)
		assert.Equal(t, amqp091.Persistent, publisher.message.DeliveryMode)
		assert.Equal(t, constvars.RabbitMQMessageTypeJSON, publisher.message.Headers[constvars.RabbitMQHeaderMessageType])

		var published requests.EmailPayload
		require.NoError(t, json.Unmarshal(publisher.message.Body, &published))
		assert.Equal(t, payload.To, published.To)
		assert.True(t, published.Encoded)
	})

	t.Run("Publish Failure Is Wrapped", func(t *testing.T) {
		publisher := &fakePublisher{err: errors.New("channel closed")}
		service := NewMailerServiceWithPublisher(publisher, "crooly_mailer", zap.NewNop())

		err := service.SendEmail(context.Background(), payload)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/mocks"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

type order struct {
	ID string `json:"id"`
}

func jsonDelivery(t *testing.T, contentType string, payload any) queue.Delivery {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return queue.NewDelivery(amqp.Delivery{ContentType: contentType, Body: body})
}

func TestJSONProcessor_Process(t *testing.T) {
	t.Parallel()

	var received order
	processor := NewJSONProcessor(func(_ context.Context, payload order) error {
		received = payload

		return nil
	})

	err := processor.Process(context.Background(), jsonDelivery(t, "application/json; charset=utf-8", order{ID: "p1"}))

	require.NoError(t, err)
	assert.Equal(t, order{ID: "p1"}, received)
}

func TestJSONProcessor_Rejects(t *testing.T) {
	t.Parallel()

	processor := NewJSONProcessor(func(context.Context, order) error {
		return nil
	})

	testCases := []struct {
		name     string
		delivery queue.Delivery
		target   error
	}{
		{
			name:     "text payload",
			delivery: queue.NewDelivery(amqp.Delivery{ContentType: queue.ContentTypeText, Body: []byte("hi")}),
			target:   domain.ErrUnsupportedContentType,
		},
		{
			name:     "malformed json",
			delivery: queue.NewDelivery(amqp.Delivery{ContentType: queue.ContentTypeJSON, Body: []byte("{")}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := processor.Process(context.Background(), tc.delivery)
			require.Error(t, err)

			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestProjectEventProcessor(t *testing.T) {
	t.Parallel()

	processor := NewProjectEventProcessor(infrastructure.NewTestLogger())

	event, err := domain.NewProjectEvent(domain.ProjectCreated, "p1", "Apollo")
	require.NoError(t, err)

	assert.NoError(t, processor.Process(context.Background(), jsonDelivery(t, queue.ContentTypeJSON, event)))

	invalid := event
	invalid.Name = ""

	err = processor.Process(context.Background(), jsonDelivery(t, queue.ContentTypeJSON, invalid))

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestContentTypeRouter(t *testing.T) {
	t.Parallel()

	textProcessor := &mocks.FakeDeliveryProcessor{}
	jsonProcessor := &mocks.FakeDeliveryProcessor{}
	jsonProcessor.ProcessReturns(errors.New("downstream unavailable"))

	router := ContentTypeRouter{
		queue.ContentTypeText: textProcessor,
		queue.ContentTypeJSON: jsonProcessor,
	}

	ctx := context.Background()

	assert.NoError(t, router.Process(ctx, queue.NewDelivery(amqp.Delivery{ContentType: "TEXT/PLAIN"})))
	assert.EqualError(t, router.Process(ctx, queue.NewDelivery(amqp.Delivery{ContentType: queue.ContentTypeJSON})), "downstream unavailable")
	assert.ErrorIs(t, router.Process(ctx, queue.NewDelivery(amqp.Delivery{ContentType: "application/xml"})), domain.ErrUnsupportedContentType)

	assert.Equal(t, 1, textProcessor.ProcessCallCount())
	assert.Equal(t, 1, jsonProcessor.ProcessCallCount())
}

func TestLogProcessor_NeverFails(t *testing.T) {
	t.Parallel()

	processor := NewLogProcessor(infrastructure.NewTestLogger())

	assert.NoError(t, processor.Process(context.Background(), queue.NewDelivery(amqp.Delivery{
		ContentType: queue.ContentTypeText,
		Body:        []byte("Hello World!"),
	})))
}

package consumer_test

import (
	"context"
	"errors"
	"testing"

	"nupo-consult/internal/events"
	"nupo-consult/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeNotifier struct {
	failFor string
	got     []events.InquirySubmittedEvent
}

func (n *fakeNotifier) NotifyInquiry(ctx context.Context, event events.InquirySubmittedEvent) error {
	n.got = append(n.got, event)
	if event.InquiryID == n.failFor {
		return errors.New("smtp down")
	}
	return nil
}

func TestConsumeInquirySubmitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"event_type":"inquiry.submitted","inquiry_id":"ok","subject":"Hello"}`)},
			{Offset: 2, Value: []byte(`not json`)},
			{Offset: 3, Value: []byte(`{"event_type":"inquiry.submitted","inquiry_id":"fails"}`)},
		},
	}
	notifier := &fakeNotifier{failFor: "fails"}

	consumer.ConsumeInquirySubmitted(ctx, reader, notifier, zap.NewNop())

	assert.Len(t, notifier.got, 2)
	assert.Equal(t, "Hello", notifier.got[0].Subject)

	offsets := []int64{}
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	assert.Equal(t, []int64{1, 2}, offsets)
}

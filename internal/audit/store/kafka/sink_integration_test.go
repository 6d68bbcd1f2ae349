//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"sortcheck/internal/audit"
	"sortcheck/pkg/testutil/containers"
)

func TestSink_ProducesEvents(t *testing.T) {
	rc := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	const topic = "audit-events-test"

	sink, err := New([]string{rc.Broker}, topic)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.EnsureTopic(ctx, 1))

	event := audit.Event{
		ID:          uuid.New(),
		Timestamp:   time.Now().UTC(),
		SortCode:    "309634",
		AccountHash: audit.HashAccount("08368133"),
		Verdict:     "valid",
		Attempts:    1,
	}
	require.NoError(t, sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rc.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "309634", string(records[0].Key))

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, "valid", got.Verdict)
	assert.Equal(t, event.AccountHash, got.AccountHash)
}

func TestSink_EnsureTopicIsIdempotent(t *testing.T) {
	rc := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	sink, err := New([]string{rc.Broker}, "audit-events-idempotent")
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.EnsureTopic(ctx, 1))
	require.NoError(t, sink.EnsureTopic(ctx, 1))
}

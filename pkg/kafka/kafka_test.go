package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
)

// The producer must not queue acks or errors nobody reads: an undrained
// Errors() channel blocks sarama internals, then Input(), then the caller.
func TestProducerConfig_FireAndForget(t *testing.T) {
	t.Parallel()
	c := producerConfig()

	require.False(t, c.Producer.Return.Successes)
	require.False(t, c.Producer.Return.Errors)
	require.Equal(t, sarama.WaitForLocal, c.Producer.RequiredAcks)
	require.NoError(t, c.Validate())
}

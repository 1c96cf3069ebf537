package output

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/shellbridge/internal/domain"
)

func TestChannel_DrainEmpty(t *testing.T) {
	c := NewChannel()

	assert.Nil(t, c.DrainAll())
	assert.Equal(t, 0, c.Len())
}

func TestChannel_FIFO(t *testing.T) {
	c := NewChannel()

	c.Enqueue(domain.RemoteChunk("a"))
	c.Enqueue(domain.EchoChunk("ls"))
	c.Enqueue(domain.RemoteChunk("b"))
	assert.Equal(t, 3, c.Len())

	drained := c.DrainAll()
	require.Len(t, drained, 3)
	assert.Equal(t, "a> ls\nb", Text(drained))
	assert.Equal(t, domain.OriginEcho, drained[1].Origin)

	assert.Nil(t, c.DrainAll())
}

func TestChannel_DropsEmptyText(t *testing.T) {
	c := NewChannel()

	c.Enqueue(domain.RemoteChunk(""))

	assert.Equal(t, 0, c.Len())
}

// Every chunk enqueued by concurrent producers is drained exactly once and
// each producer's chunks keep their relative order.
func TestChannel_ConcurrentProducersExactlyOnce(t *testing.T) {
	const producers = 8
	const perProducer = 500

	c := NewChannel()
	var done atomic.Bool
	var drained []domain.Chunk

	consumer := make(chan struct{})
	go func() {
		defer close(consumer)
		for !done.Load() {
			drained = append(drained, c.DrainAll()...)
		}
		drained = append(drained, c.DrainAll()...)
	}()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				c.Enqueue(domain.RemoteChunk(fmt.Sprintf("%d:%d", p, i)))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	done.Store(true)
	<-consumer

	require.Len(t, drained, producers*perProducer)

	next := make(map[int]int)
	for _, chunk := range drained {
		var p, i int
		_, err := fmt.Sscanf(chunk.Text, "%d:%d", &p, &i)
		require.NoError(t, err)
		assert.Equal(t, next[p], i, "producer %d out of order", p)
		next[p] = i + 1
	}
	for p := 0; p < producers; p++ {
		assert.Equal(t, perProducer, next[p])
	}
}

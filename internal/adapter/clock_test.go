package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSleepContext(t *testing.T) {
	clock := NewClock()

	assert.NoError(t, clock.SleepContext(context.Background(), time.Millisecond))
	assert.NoError(t, clock.SleepContext(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, clock.SleepContext(ctx, time.Minute), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMarshalCanonical_StableAcrossKeyOrder(t *testing.T) {
	j := NewJSON()

	a, err := j.MarshalCanonical(map[string]interface{}{"b": 1, "a": "x", "c": []int{2, 1}})
	assert.NoError(t, err)
	b, err := j.MarshalCanonical(map[string]interface{}{"c": []int{2, 1}, "a": "x", "b": 1})
	assert.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"a":"x","b":1,"c":[2,1]}`, string(a))
}

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryTimer(t *testing.T) {
	timer := startTimer()
	time.Sleep(time.Millisecond)
	stats := timer.Finish(100, 7)

	assert.Greater(t, stats.Nanos, int64(0))
	assert.Greater(t, stats.Millis, 0.0)
	assert.Greater(t, stats.Seconds, 0.0)
	assert.Equal(t, 100, stats.CorpusSize)
	assert.Equal(t, 7, stats.Found)
	assert.Greater(t, stats.DocsPerSecond, 0.0)
	assert.Contains(t, stats.Message, "found 7")
	assert.Contains(t, stats.Message, "100 documents")
}

func TestQueryTimer_EmptyCorpus(t *testing.T) {
	timer := startTimer()
	stats := timer.Finish(0, 0)

	assert.Equal(t, 0, stats.CorpusSize)
	assert.Equal(t, 0.0, stats.DocsPerSecond)
}

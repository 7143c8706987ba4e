package search

import (
	"fmt"
	"time"
)

// QueryStats is the diagnostic timing summary attached to every engine
// response. It never affects the result itself.
type QueryStats struct {
	Nanos         int64   `json:"nanos"`
	Millis        float64 `json:"millis"`
	Seconds       float64 `json:"seconds"`
	CorpusSize    int     `json:"corpusSize"`
	Found         int     `json:"found"`
	DocsPerSecond float64 `json:"docsPerSecond"`
	Message       string  `json:"message"`
}

// queryTimer measures the wall-clock duration of one query. time.Since uses
// the monotonic clock reading captured at start.
type queryTimer struct {
	start time.Time
}

func startTimer() queryTimer {
	return queryTimer{start: time.Now()}
}

// Finish packages the elapsed time with corpus size and result count.
func (t queryTimer) Finish(corpusSize, found int) QueryStats {
	elapsed := time.Since(t.start)
	seconds := elapsed.Seconds()

	throughput := 0.0
	if seconds > 0 {
		throughput = float64(corpusSize) / seconds
	}

	return QueryStats{
		Nanos:         elapsed.Nanoseconds(),
		Millis:        float64(elapsed.Nanoseconds()) / 1e6,
		Seconds:       seconds,
		CorpusSize:    corpusSize,
		Found:         found,
		DocsPerSecond: throughput,
		Message: fmt.Sprintf("scanned %d documents in %s, found %d",
			corpusSize, elapsed.Round(time.Microsecond), found),
	}
}

package pubsub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

type countingRecorder struct {
	outcomes map[bool]int
}

func (r *countingRecorder) EventPublished(eventType string, success bool) {
	if eventType == eventTypeOrderLineCreated {
		r.outcomes[success]++
	}
}

func TestInstrumentedPublisher_RecordsOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	recorder := &countingRecorder{outcomes: map[bool]int{}}
	event := &service.OrderLineEvent{EventID: "evt-1", MerchantID: 2}

	ok := NewInstrumentedPublisher(NewNoopPublisher(testLogger()), recorder)
	assert.NoError(t, ok.PublishOrderLineCreated(context.Background(), event))

	failing := NewInstrumentedPublisher(NewLocalHTTPPublisher(srv.URL, testLogger()), recorder)
	assert.Error(t, failing.PublishOrderLineCreated(context.Background(), event))

	assert.Equal(t, 1, recorder.outcomes[true])
	assert.Equal(t, 1, recorder.outcomes[false])
	assert.NoError(t, ok.Close())
}

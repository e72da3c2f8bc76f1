package citylist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudorandom/travel-atlas/pkg/sources"
)

func TestStartDeliversOnce(t *testing.T) {
	srv := newAPI(t, franceBody)

	ch := Start(context.Background(), srv.Client(), srv.URL)
	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Len(t, res.Records, 2)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after the single result")
}

func TestStartReportsFailure(t *testing.T) {
	srv := newAPI(t, `not json`)

	res := <-Start(context.Background(), srv.Client(), srv.URL)
	assert.ErrorIs(t, res.Err, sources.ErrNetwork)
	assert.Empty(t, res.Records)
}

func TestStartDiscardsAfterTeardown(t *testing.T) {
	entered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := Start(ctx, srv.Client(), srv.URL)
	<-entered
	cancel()

	select {
	case res, ok := <-ch:
		assert.False(t, ok, "expected no result after teardown, got %+v", res)
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not finish after cancellation")
	}
}

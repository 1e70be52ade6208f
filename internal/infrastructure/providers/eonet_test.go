package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/infrastructure/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEONET_NaturalEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "open", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"events":[
			{"id":"EONET_1","title":"Wildfire","link":"l1","categories":[{"id":"wildfires","title":"Wildfires"}],
			 "geometry":[{"date":"2026-03-01T00:00:00Z","type":"Point","coordinates":[-120.5,38.2]},{"date":"2026-03-02T00:00:00Z","type":"Point","coordinates":[-120.6,38.3]}]},
			{"id":"EONET_2","title":"Iceberg","categories":[],"geometry":[{"date":"2026-03-03T00:00:00Z","type":"Polygon","coordinates":[[[1,2],[3,4]]]}]}
		]}`))
	}))
	defer srv.Close()

	p := providers.NewEONETProvider(newFetcher(srv), srv.URL, oneShot)
	res := p.FetchNaturalEvents(context.Background(), 20)
	require.True(t, res.IsOk(), "%v", res.Err())
	events, _ := res.Value()
	require.Len(t, events, 2)
	assert.Equal(t, []string{"Wildfires"}, events[0].Categories)
	assert.Equal(t, "2026-03-02T00:00:00Z", events[0].Date)
	assert.Equal(t, []float64{-120.6, 38.3}, events[0].Coordinates)
	assert.Nil(t, events[1].Coordinates)
}

func TestEONET_MissingEventsIsParseFailure(t *testing.T) {
	srv := routes(t, map[string]string{"/events": `{"title":"EONET"}`})
	p := providers.NewEONETProvider(newFetcher(srv), srv.URL, oneShot)
	res := p.FetchNaturalEvents(context.Background(), 0)
	require.False(t, res.IsOk())
	assert.Equal(t, fetch.ParseFailure, res.Err().Kind)
}

package providers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/goccy/go-json"
)

const DefaultEONETURL = "https://eonet.gsfc.nasa.gov/api/v3"

// EONETProvider implements ports.EONETProvider.
type EONETProvider struct {
	fetcher ports.Fetcher
	baseURL string
	retry   RetryPolicy
}

func NewEONETProvider(f ports.Fetcher, baseURL string, retry RetryPolicy) *EONETProvider {
	if baseURL == "" {
		baseURL = DefaultEONETURL
	}
	return &EONETProvider{fetcher: f, baseURL: baseURL, retry: retry}
}

type eonetPayload struct {
	Events *[]struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Link       string `json:"link"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
		Geometry []struct {
			Date        string          `json:"date"`
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"events"`
}

// FetchNaturalEvents reads open natural events, newest geometry last.
func (p *EONETProvider) FetchNaturalEvents(ctx context.Context, limit int) fetch.Result[[]celestial.NaturalEvent] {
	if limit <= 0 {
		limit = 20
	}
	opts := ports.FetchOptions{Query: url.Values{"limit": {strconv.Itoa(limit)}, "status": {"open"}}}
	res := getJSON[eonetPayload](ctx, p.fetcher, joinURL(p.baseURL, "events"), opts, p.retry)
	return fetch.Map(res, func(raw eonetPayload) ([]celestial.NaturalEvent, error) {
		if raw.Events == nil {
			return nil, fetch.Errorf(fetch.ParseFailure, "missing events array")
		}
		out := make([]celestial.NaturalEvent, 0, len(*raw.Events))
		for _, e := range *raw.Events {
			ev := celestial.NaturalEvent{ID: e.ID, Title: e.Title, Link: e.Link, Categories: make([]string, 0, len(e.Categories))}
			for _, c := range e.Categories {
				ev.Categories = append(ev.Categories, c.Title)
			}
			if n := len(e.Geometry); n > 0 {
				latest := e.Geometry[n-1]
				ev.Date = latest.Date
				// Polygons carry nested rings; only points are exposed.
				if latest.Type == "Point" {
					var coords []float64
					if err := json.Unmarshal(latest.Coordinates, &coords); err == nil {
						ev.Coordinates = coords
					}
				}
			}
			out = append(out, ev)
		}
		return out, nil
	})
}

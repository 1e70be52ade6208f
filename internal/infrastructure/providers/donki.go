package providers

import (
	"context"
	"net/url"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/celestial"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

const (
	DefaultDONKIURL = "https://api.nasa.gov/DONKI"
	DemoAPIKey      = "DEMO_KEY"
)

// DONKIProvider implements ports.DONKIProvider.
type DONKIProvider struct {
	fetcher ports.Fetcher
	baseURL string
	apiKey  string
	retry   RetryPolicy
}

func NewDONKIProvider(f ports.Fetcher, baseURL, apiKey string, retry RetryPolicy) *DONKIProvider {
	if baseURL == "" {
		baseURL = DefaultDONKIURL
	}
	if apiKey == "" {
		apiKey = DemoAPIKey
	}
	return &DONKIProvider{fetcher: f, baseURL: baseURL, apiKey: apiKey, retry: retry}
}

type cmeWire struct {
	ActivityID     string  `json:"activityID"`
	StartTime      string  `json:"startTime"`
	SourceLocation *string `json:"sourceLocation"`
	Note           *string `json:"note"`
	Link           *string `json:"link"`
}

type flareWire struct {
	FlrID          string  `json:"flrID"`
	BeginTime      string  `json:"beginTime"`
	PeakTime       *string `json:"peakTime"`
	EndTime        *string `json:"endTime"`
	ClassType      string  `json:"classType"`
	SourceLocation *string `json:"sourceLocation"`
	Link           *string `json:"link"`
}

type stormWire struct {
	GstID      string `json:"gstID"`
	StartTime  string `json:"startTime"`
	AllKpIndex []struct {
		ObservedTime string  `json:"observedTime"`
		KpIndex      float64 `json:"kpIndex"`
		Source       string  `json:"source"`
	} `json:"allKpIndex"`
	Link *string `json:"link"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fetchList GETs one DONKI feed over window. DONKI answers an empty body
// when nothing happened in the window, which is an empty list.
func fetchList[W any](ctx context.Context, p *DONKIProvider, feed string, window celestial.DateWindow) fetch.Result[[]W] {
	opts := ports.FetchOptions{Query: url.Values{
		"startDate": {window.StartDate()},
		"endDate":   {window.EndDate()},
		"api_key":   {p.apiKey},
	}}
	raw := p.fetcher.Fetch(ctx, joinURL(p.baseURL, feed), opts, p.retry.MaxAttempts, p.retry.BaseDelay)
	return fetch.Map(raw, func(b fetch.RawJSON) ([]W, error) {
		if isEmptyBody(b) {
			return []W{}, nil
		}
		return decode[[]W](b)
	})
}

// FetchCMEs reads coronal mass ejections.
func (p *DONKIProvider) FetchCMEs(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.CME] {
	return fetch.Map(fetchList[cmeWire](ctx, p, "CME", window), func(in []cmeWire) ([]celestial.CME, error) {
		out := make([]celestial.CME, 0, len(in))
		for _, c := range in {
			if c.ActivityID == "" {
				return nil, fetch.Errorf(fetch.ParseFailure, "CME without activityID")
			}
			out = append(out, celestial.CME{
				ActivityID:     c.ActivityID,
				StartTime:      c.StartTime,
				SourceLocation: deref(c.SourceLocation),
				Note:           deref(c.Note),
				Link:           deref(c.Link),
			})
		}
		return out, nil
	})
}

// FetchFlares reads solar flares.
func (p *DONKIProvider) FetchFlares(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.SolarFlare] {
	return fetch.Map(fetchList[flareWire](ctx, p, "FLR", window), func(in []flareWire) ([]celestial.SolarFlare, error) {
		out := make([]celestial.SolarFlare, 0, len(in))
		for _, f := range in {
			if f.FlrID == "" {
				return nil, fetch.Errorf(fetch.ParseFailure, "flare without flrID")
			}
			out = append(out, celestial.SolarFlare{
				FlrID:          f.FlrID,
				BeginTime:      f.BeginTime,
				PeakTime:       deref(f.PeakTime),
				EndTime:        deref(f.EndTime),
				ClassType:      f.ClassType,
				SourceLocation: deref(f.SourceLocation),
				Link:           deref(f.Link),
			})
		}
		return out, nil
	})
}

// FetchStorms reads geomagnetic storms.
func (p *DONKIProvider) FetchStorms(ctx context.Context, window celestial.DateWindow) fetch.Result[[]celestial.GeomagneticStorm] {
	return fetch.Map(fetchList[stormWire](ctx, p, "GST", window), func(in []stormWire) ([]celestial.GeomagneticStorm, error) {
		out := make([]celestial.GeomagneticStorm, 0, len(in))
		for _, s := range in {
			if s.GstID == "" {
				return nil, fetch.Errorf(fetch.ParseFailure, "storm without gstID")
			}
			readings := make([]celestial.KpReading, 0, len(s.AllKpIndex))
			for _, kp := range s.AllKpIndex {
				readings = append(readings, celestial.KpReading{ObservedTime: kp.ObservedTime, KpIndex: kp.KpIndex, Source: kp.Source})
			}
			out = append(out, celestial.GeomagneticStorm{
				GstID:      s.GstID,
				StartTime:  s.StartTime,
				AllKpIndex: readings,
				Link:       deref(s.Link),
			})
		}
		return out, nil
	})
}

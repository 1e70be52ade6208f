package providers

import (
	"context"
	"net/url"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/mission"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

const DefaultSpaceXURL = "https://api.spacexdata.com/v4"

const (
	upcomingLimit = 5
	pastLimit     = 10
)

// SpaceXProvider implements ports.SpaceXProvider.
type SpaceXProvider struct {
	fetcher ports.Fetcher
	baseURL string
	retry   RetryPolicy
}

func NewSpaceXProvider(f ports.Fetcher, baseURL string, retry RetryPolicy) *SpaceXProvider {
	if baseURL == "" {
		baseURL = DefaultSpaceXURL
	}
	return &SpaceXProvider{fetcher: f, baseURL: baseURL, retry: retry}
}

type launchWire struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	DateUTC   string  `json:"date_utc"`
	DateLocal string  `json:"date_local"`
	Success   *bool   `json:"success"`
	Upcoming  bool    `json:"upcoming"`
	Details   *string `json:"details"`
	Rocket    string  `json:"rocket"`
	Launchpad string  `json:"launchpad"`
	Links     struct {
		Patch struct {
			Small *string `json:"small"`
		} `json:"patch"`
		Webcast   *string `json:"webcast"`
		Article   *string `json:"article"`
		Wikipedia *string `json:"wikipedia"`
	} `json:"links"`
}

func (l launchWire) record(status mission.Status) (mission.Record, error) {
	if l.ID == "" {
		return mission.Record{}, fetch.Errorf(fetch.ParseFailure, "launch without id")
	}
	date, err := time.Parse(time.RFC3339, l.DateUTC)
	if err != nil {
		return mission.Record{}, fetch.Errorf(fetch.ParseFailure, "launch %s date %q", l.ID, l.DateUTC)
	}
	return mission.Record{
		ID:        l.ID,
		Name:      l.Name,
		Date:      date.UTC(),
		DateLocal: l.DateLocal,
		Status:    status,
		Success:   l.Success,
		Details:   deref(l.Details),
		Rocket:    l.Rocket,
		Launchpad: l.Launchpad,
		Links: &mission.Links{
			Patch:     deref(l.Links.Patch.Small),
			Webcast:   deref(l.Links.Webcast),
			Article:   deref(l.Links.Article),
			Wikipedia: deref(l.Links.Wikipedia),
		},
		Source: mission.SourceSpaceX,
	}, nil
}

func (l launchWire) status() mission.Status {
	switch {
	case l.Upcoming:
		return mission.StatusUpcoming
	case l.Success != nil && *l.Success:
		return mission.StatusSuccess
	default:
		return mission.StatusFailed
	}
}

// FetchUpcomingLaunches returns the next few scheduled launches.
func (p *SpaceXProvider) FetchUpcomingLaunches(ctx context.Context) fetch.Result[[]mission.Record] {
	res := getJSON[[]launchWire](ctx, p.fetcher, joinURL(p.baseURL, "launches/upcoming"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(in []launchWire) ([]mission.Record, error) {
		if len(in) > upcomingLimit {
			in = in[:upcomingLimit]
		}
		out := make([]mission.Record, 0, len(in))
		for _, l := range in {
			r, err := l.record(mission.StatusUpcoming)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	})
}

// FetchPastLaunches returns the most recent launches, newest first.
func (p *SpaceXProvider) FetchPastLaunches(ctx context.Context) fetch.Result[[]mission.Record] {
	opts := ports.FetchOptions{Query: url.Values{"limit": {"10"}}}
	res := getJSON[[]launchWire](ctx, p.fetcher, joinURL(p.baseURL, "launches/past"), opts, p.retry)
	return fetch.Map(res, func(in []launchWire) ([]mission.Record, error) {
		if len(in) > pastLimit {
			in = in[len(in)-pastLimit:]
		}
		out := make([]mission.Record, 0, len(in))
		for i := len(in) - 1; i >= 0; i-- {
			status := mission.StatusFailed
			if in[i].Success != nil && *in[i].Success {
				status = mission.StatusSuccess
			}
			r, err := in[i].record(status)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	})
}

// FetchLaunch reads a single launch; an unknown id is NotFound.
func (p *SpaceXProvider) FetchLaunch(ctx context.Context, id string) fetch.Result[mission.Record] {
	res := getJSON[launchWire](ctx, p.fetcher, joinURL(p.baseURL, "launches/"+url.PathEscape(id)), ports.FetchOptions{NotFoundIsFinal: true}, p.retry)
	return fetch.Map(res, func(l launchWire) (mission.Record, error) {
		return l.record(l.status())
	})
}

type rocketWire struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	Stages      int    `json:"stages"`
	Height      struct {
		Meters *float64 `json:"meters"`
		Feet   *float64 `json:"feet"`
	} `json:"height"`
	Diameter struct {
		Meters *float64 `json:"meters"`
		Feet   *float64 `json:"feet"`
	} `json:"diameter"`
	Mass struct {
		Kg int64 `json:"kg"`
		Lb int64 `json:"lb"`
	} `json:"mass"`
	FirstFlight   string   `json:"first_flight"`
	SuccessRate   float64  `json:"success_rate_pct"`
	CostPerLaunch int64    `json:"cost_per_launch"`
	FlickrImages  []string `json:"flickr_images"`
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// FetchRockets reads every rocket spec sheet.
func (p *SpaceXProvider) FetchRockets(ctx context.Context) fetch.Result[[]mission.Rocket] {
	res := getJSON[[]rocketWire](ctx, p.fetcher, joinURL(p.baseURL, "rockets"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(in []rocketWire) ([]mission.Rocket, error) {
		out := make([]mission.Rocket, 0, len(in))
		for _, r := range in {
			if r.ID == "" {
				return nil, fetch.Errorf(fetch.ParseFailure, "rocket without id")
			}
			images := r.FlickrImages
			if images == nil {
				images = []string{}
			}
			out = append(out, mission.Rocket{
				ID:            r.ID,
				Name:          r.Name,
				Description:   r.Description,
				Active:        r.Active,
				Stages:        r.Stages,
				Height:        mission.Dimension{Meters: derefFloat(r.Height.Meters), Feet: derefFloat(r.Height.Feet)},
				Diameter:      mission.Dimension{Meters: derefFloat(r.Diameter.Meters), Feet: derefFloat(r.Diameter.Feet)},
				Mass:          mission.Mass{Kg: r.Mass.Kg, Lb: r.Mass.Lb},
				FirstFlight:   r.FirstFlight,
				SuccessRate:   r.SuccessRate,
				CostPerLaunch: r.CostPerLaunch,
				Images:        images,
			})
		}
		return out, nil
	})
}

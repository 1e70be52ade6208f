package providers

import (
	"context"
	"strconv"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/iss"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

const DefaultOpenNotifyURL = "http://api.open-notify.org"

// OpenNotifyProvider implements ports.ISSProvider.
type OpenNotifyProvider struct {
	fetcher ports.Fetcher
	baseURL string
	retry   RetryPolicy
}

func NewOpenNotifyProvider(f ports.Fetcher, baseURL string, retry RetryPolicy) *OpenNotifyProvider {
	if baseURL == "" {
		baseURL = DefaultOpenNotifyURL
	}
	return &OpenNotifyProvider{fetcher: f, baseURL: baseURL, retry: retry}
}

type issNowPayload struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

type astrosPayload struct {
	Message string `json:"message"`
	Number  int    `json:"number"`
	People  []struct {
		Name  string `json:"name"`
		Craft string `json:"craft"`
	} `json:"people"`
}

// FetchPosition reads iss-now.json.
func (p *OpenNotifyProvider) FetchPosition(ctx context.Context) fetch.Result[iss.Position] {
	res := getJSON[issNowPayload](ctx, p.fetcher, joinURL(p.baseURL, "iss-now.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(raw issNowPayload) (iss.Position, error) {
		if raw.Message != "success" {
			return iss.Position{}, fetch.Errorf(fetch.ParseFailure, "unexpected message %q", raw.Message)
		}
		lat, err := strconv.ParseFloat(raw.ISSPosition.Latitude, 64)
		if err != nil {
			return iss.Position{}, fetch.Errorf(fetch.ParseFailure, "latitude %q", raw.ISSPosition.Latitude)
		}
		lon, err := strconv.ParseFloat(raw.ISSPosition.Longitude, 64)
		if err != nil {
			return iss.Position{}, fetch.Errorf(fetch.ParseFailure, "longitude %q", raw.ISSPosition.Longitude)
		}
		return iss.NewPosition(lat, lon, raw.Timestamp), nil
	})
}

// FetchCrew reads astros.json.
func (p *OpenNotifyProvider) FetchCrew(ctx context.Context) fetch.Result[iss.CrewRoster] {
	res := getJSON[astrosPayload](ctx, p.fetcher, joinURL(p.baseURL, "astros.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(raw astrosPayload) (iss.CrewRoster, error) {
		if raw.Message != "" && raw.Message != "success" {
			return iss.CrewRoster{}, fetch.Errorf(fetch.ParseFailure, "unexpected message %q", raw.Message)
		}
		people := make([]iss.Astronaut, 0, len(raw.People))
		for _, person := range raw.People {
			people = append(people, iss.Astronaut{Name: person.Name, Craft: person.Craft})
		}
		count := raw.Number
		if count == 0 {
			count = len(people)
		}
		return iss.CrewRoster{Count: count, People: people}, nil
	})
}

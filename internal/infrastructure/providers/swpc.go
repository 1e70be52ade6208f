package providers

import (
	"context"
	"strconv"
	"strings"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/weather"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
)

const DefaultSWPCURL = "https://services.swpc.noaa.gov"

// longChannel is the GOES X-ray band used for flare classification.
const longChannel = "0.1-0.8nm"

// SWPCProvider implements ports.SWPCProvider.
type SWPCProvider struct {
	fetcher ports.Fetcher
	baseURL string
	retry   RetryPolicy
}

func NewSWPCProvider(f ports.Fetcher, baseURL string, retry RetryPolicy) *SWPCProvider {
	if baseURL == "" {
		baseURL = DefaultSWPCURL
	}
	return &SWPCProvider{fetcher: f, baseURL: baseURL, retry: retry}
}

// table is the SWPC "products" shape: an array of rows whose first row is
// usually a header of column names.
type table [][]any

func (t table) rows(firstColumn string) [][]any {
	if len(t) > 0 && len(t[0]) > 0 && strings.EqualFold(cellString(t[0][0]), firstColumn) {
		return t[1:]
	}
	return t
}

// FetchKpIndex reads the planetary K-index table. Unparseable values are
// recorded as 0 and do not count as the current reading.
func (p *SWPCProvider) FetchKpIndex(ctx context.Context) fetch.Result[weather.KpHistory] {
	res := getJSON[table](ctx, p.fetcher, joinURL(p.baseURL, "products/noaa-planetary-k-index.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(t table) (weather.KpHistory, error) {
		rows := t.rows("time_tag")
		h := weather.KpHistory{Samples: make([]weather.KpSample, 0, len(rows))}
		for _, row := range rows {
			if len(row) < 2 {
				return weather.KpHistory{}, fetch.Errorf(fetch.ParseFailure, "kp row has %d cells", len(row))
			}
			v, ok := cellFloat(row[1])
			if ok {
				h.Current = v
			} else {
				v = 0
			}
			h.Samples = append(h.Samples, weather.KpSample{Time: cellString(row[0]), Value: v})
		}
		return h, nil
	})
}

// FetchSolarWind reads the 7-day plasma table [time, density, speed, temperature].
func (p *SWPCProvider) FetchSolarWind(ctx context.Context) fetch.Result[[]weather.WindSample] {
	res := getJSON[table](ctx, p.fetcher, joinURL(p.baseURL, "products/solar-wind/plasma-7-day.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(t table) ([]weather.WindSample, error) {
		rows := t.rows("time_tag")
		out := make([]weather.WindSample, 0, len(rows))
		for _, row := range rows {
			if len(row) < 4 {
				return nil, fetch.Errorf(fetch.ParseFailure, "plasma row has %d cells", len(row))
			}
			density, _ := cellFloat(row[1])
			speed, _ := cellFloat(row[2])
			temp, _ := cellFloat(row[3])
			out = append(out, weather.WindSample{Time: cellString(row[0]), Density: density, Speed: speed, Temperature: temp})
		}
		return out, nil
	})
}

type xrayWire struct {
	TimeTag string   `json:"time_tag"`
	Flux    *float64 `json:"flux"`
	Energy  string   `json:"energy"`
}

// FetchXrayFlux returns the latest long-channel flux in W/m², 0 when absent.
func (p *SWPCProvider) FetchXrayFlux(ctx context.Context) fetch.Result[float64] {
	res := getJSON[[]xrayWire](ctx, p.fetcher, joinURL(p.baseURL, "json/goes/primary/xrays-7-day.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(in []xrayWire) (float64, error) {
		for i := len(in) - 1; i >= 0; i-- {
			if in[i].Energy == longChannel && in[i].Flux != nil {
				return *in[i].Flux, nil
			}
		}
		return 0, nil
	})
}

type alertWire struct {
	ProductID     string `json:"product_id"`
	IssueDatetime string `json:"issue_datetime"`
	Message       string `json:"message"`
}

// FetchAlerts reads the current SWPC alerts in feed order.
func (p *SWPCProvider) FetchAlerts(ctx context.Context) fetch.Result[[]weather.Alert] {
	res := getJSON[[]alertWire](ctx, p.fetcher, joinURL(p.baseURL, "products/alerts.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(in []alertWire) ([]weather.Alert, error) {
		out := make([]weather.Alert, 0, len(in))
		for _, a := range in {
			out = append(out, weather.Alert{IssueTime: a.IssueDatetime, Message: a.Message, ProductID: a.ProductID})
		}
		return out, nil
	})
}

type scaleWire struct {
	Scale any    `json:"Scale"`
	Text  string `json:"Text"`
}

type scalesEntry struct {
	R *scaleWire `json:"R"`
	S *scaleWire `json:"S"`
	G *scaleWire `json:"G"`
}

// FetchScales reads the current ("0") entry of the NOAA scales product.
func (p *SWPCProvider) FetchScales(ctx context.Context) fetch.Result[weather.RadiationScales] {
	res := getJSON[map[string]scalesEntry](ctx, p.fetcher, joinURL(p.baseURL, "products/noaa-scales.json"), ports.FetchOptions{}, p.retry)
	return fetch.Map(res, func(in map[string]scalesEntry) (weather.RadiationScales, error) {
		cur, ok := in["0"]
		if !ok || cur.R == nil || cur.S == nil || cur.G == nil {
			return weather.RadiationScales{}, fetch.Errorf(fetch.ParseFailure, "missing current scales")
		}
		return weather.RadiationScales{R: toScale(cur.R), S: toScale(cur.S), G: toScale(cur.G)}, nil
	})
}

func toScale(w *scaleWire) weather.Scale {
	s := weather.Scale{Text: w.Text}
	if s.Text == "" {
		s.Text = "none"
	}
	switch v := w.Scale.(type) {
	case float64:
		s.Scale = int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			s.Scale = n
		}
	}
	return s
}

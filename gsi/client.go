// Package gsi talks to the survey calculation service of the Geospatial
// Information Authority of Japan, which converts between latitude/longitude
// and plane rectangular coordinates. It is used to check the accuracy of
// coorkit's projection, never by the projection itself.
package gsi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

const (
	bl2xyPath = "/sokuchi/surveycalc/surveycalc/bl2xy.pl"
	xy2blPath = "/sokuchi/surveycalc/surveycalc/xy2bl.pl"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is one answer of the service. Fields the endpoint does not
// return are zero.
type Result struct {
	X               float64 // meters, northing
	Y               float64 // meters, easting
	Latitude        float64 // degrees
	Longitude       float64 // degrees
	GridConvergence float64 // degrees
	ScaleFactor     float64
}

// Surveyor converts between geographic and plane coordinates in a fixed
// plane zone.
type Surveyor interface {
	// LatLngToXY fills X, Y, GridConvergence and ScaleFactor.
	LatLngToXY(ctx context.Context, latitude, longitude float64) (Result, error)
	// XYToLatLng fills Latitude, Longitude, GridConvergence and ScaleFactor.
	XYToLatLng(ctx context.Context, x, y float64) (Result, error)
}

// StatusError is returned for a non-2xx answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gsi: unexpected status %d: %s", e.Code, e.Body)
}

// Client is a Surveyor backed by the GSI web service. It is safe for
// concurrent use; requests are spaced by Config.Interval.
type Client struct {
	cfg     Config
	session *http.Client
	limiter *rate.Limiter
}

var _ Surveyor = (*Client)(nil)

// NewClient constructs a Client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}
	return &Client{
		cfg:     cfg,
		session: &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// LatLngToXY implements Surveyor.
func (c *Client) LatLngToXY(ctx context.Context, latitude, longitude float64) (Result, error) {
	q := c.query()
	q.Set("latitude", formatFloat(latitude))
	q.Set("longitude", formatFloat(longitude))
	return c.get(ctx, bl2xyPath, q)
}

// XYToLatLng implements Surveyor.
func (c *Client) XYToLatLng(ctx context.Context, x, y float64) (Result, error) {
	q := c.query()
	q.Set("publicX", formatFloat(x))
	q.Set("publicY", formatFloat(y))
	return c.get(ctx, xy2blPath, q)
}

func (c *Client) query() url.Values {
	q := url.Values{}
	q.Set("zone", strconv.Itoa(c.cfg.Zone))
	q.Set("refFrame", strconv.Itoa(c.cfg.RefFrame))
	q.Set("outputType", "json")
	return q
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// number accepts both JSON numbers and numbers quoted as strings, since the
// service has answered with either.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("gsi: bad number %q: %w", s, err)
	}
	*n = number(v)
	return nil
}

type export struct {
	Output *struct {
		PublicX     number `json:"publicX"`
		PublicY     number `json:"publicY"`
		Latitude    number `json:"latitude"`
		Longitude   number `json:"longitude"`
		GridConv    number `json:"gridConv"`
		ScaleFactor number `json:"scaleFactor"`
	} `json:"OutputData"`
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (Result, error) {
	u := c.cfg.BaseURL + path + "?" + q.Encode()
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	var e export
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return Result{}, fmt.Errorf("gsi: decode %s: %w", path, err)
	}
	if e.Output == nil {
		return Result{}, fmt.Errorf("gsi: %s: response without OutputData", path)
	}
	return Result{
		X:               float64(e.Output.PublicX),
		Y:               float64(e.Output.PublicY),
		Latitude:        float64(e.Output.Latitude),
		Longitude:       float64(e.Output.Longitude),
		GridConvergence: float64(e.Output.GridConv),
		ScaleFactor:     float64(e.Output.ScaleFactor),
	}, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	glog.V(1).Infof("GET %s", req.URL)
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<12))
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 5xx answers)
// with exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !transient(err) || attempt == c.cfg.Attempts {
			break
		}

		glog.Warningf("gsi: attempt %d/%d for %s failed, retrying in %s: %v",
			attempt, c.cfg.Attempts, req.URL.Path, backoff, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("gsi: request failed: %w", lastErr)
}

func transient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var ne net.Error
	return errors.As(err, &ne)
}

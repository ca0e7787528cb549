package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kardolus/busplug/blocklist"
	"github.com/kardolus/busplug/cache"
	"github.com/kardolus/busplug/classifier"
	"github.com/kardolus/busplug/config"
	"github.com/kardolus/busplug/http"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	InvalidStopID   = "Not a valid stop id"
	RequestError    = "There was an error sending the request"
	UnknownResponse = "Unknown response format"

	invalidStopMessage = "no data found for parameter"
	errMissingAPIKey   = "missing api key"
	errEmptyURL        = "missing service url"
)

// Looker is what the serving layer depends on.
type Looker interface {
	Lookup(id string) string
}

// Client resolves stop ids to displayable arrival strings, serving from the
// cache while fresh and remembering ids the API has rejected.
type Client struct {
	caller    http.Caller
	cache     *cache.Cache
	blocklist *blocklist.Blocklist
	window    time.Duration
	endpoint  string
	apiKey    string
	group     singleflight.Group
}

// Ensure Client implements Looker interface
var _ Looker = &Client{}

func New(caller http.Caller, cfg config.Config, c *cache.Cache, b *blocklist.Blocklist) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errMissingAPIKey)
	}
	if cfg.URL == "" {
		return nil, errors.New(errEmptyURL)
	}

	window := cfg.FreshnessWindowDuration()
	if window <= 0 {
		window = cache.FreshnessWindow
	}

	return &Client{
		caller:    caller,
		cache:     c,
		blocklist: b,
		window:    window,
		endpoint:  strings.TrimRight(cfg.URL, "/") + cfg.PredictionsPath,
		apiKey:    cfg.APIKey,
	}, nil
}

// Lookup never fails: every outcome, including transport errors, is reported
// as a displayable string.
func (c *Client) Lookup(id string) string {
	sugar := zap.S()

	if value, ok := c.cache.GetFresh(id, c.window); ok {
		sugar.Debugf("cache hit for stop %s", id)
		return value
	}

	if c.blocklist.IsKnownInvalid(id) {
		sugar.Debugf("stop %s is blocklisted", id)
		return InvalidStopID
	}

	result, _, shared := c.group.Do(id, func() (interface{}, error) {
		return c.fetch(id), nil
	})
	if shared {
		sugar.Debugf("shared in-flight fetch for stop %s", id)
	}

	return result.(string)
}

func (c *Client) fetch(id string) string {
	sugar := zap.S()
	sugar.Debugf("fetching predictions for stop %s", id)

	body, err := c.caller.Get(c.requestURL(id))
	if err != nil {
		sugar.Warnf("request for stop %s failed: %v", id, err)
		return RequestError
	}

	response := classifier.Classify(string(body))
	switch response.Kind {
	case classifier.Predictions:
		result := response.Summary()
		c.cache.Put(id, result)
		return result
	case classifier.Message:
		if strings.Contains(strings.ToLower(response.Text), invalidStopMessage) {
			sugar.Infof("marking stop %s as invalid", id)
			c.blocklist.MarkInvalid(id)
			return InvalidStopID
		}
		c.cache.Put(id, response.Text)
		return response.Text
	default:
		sugar.Warnf("unrecognized response for stop %s", id)
		return UnknownResponse
	}
}

func (c *Client) requestURL(id string) string {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("stpid", id)

	return fmt.Sprintf("%s?%s", c.endpoint, query.Encode())
}

package http

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kardolus/busplug/config"
	"go.uber.org/zap"
)

const (
	errFailedToRead          = "failed to read response: %w"
	errFailedToCreateRequest = "failed to create request: %w"
	errFailedToMakeRequest   = "failed to make request: %w"
	headerAccept             = "Accept"
	headerUserAgent          = "User-Agent"
	acceptXML                = "application/xml, text/xml"
	defaultTimeout           = 10 * time.Second
)

type Caller interface {
	Get(url string) ([]byte, error)
}

type RestCaller struct {
	client    *http.Client
	userAgent string
}

// Ensure RestCaller implements Caller interface
var _ Caller = &RestCaller{}

func New(cfg config.Config) *RestCaller {
	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &http.Client{Timeout: timeout}
	if cfg.SkipTLSVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &RestCaller{
		client:    client,
		userAgent: cfg.UserAgent,
	}
}

// Get issues a GET and returns whatever body came back. Only a failure to
// exchange the request or read the body is an error; the status code is
// logged and left to the classifier.
func (r *RestCaller) Get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(errFailedToCreateRequest, err)
	}

	req.Header.Set(headerAccept, acceptXML)
	if r.userAgent != "" {
		req.Header.Set(headerUserAgent, r.userAgent)
	}

	response, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(errFailedToMakeRequest, err)
	}
	defer response.Body.Close()

	result, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf(errFailedToRead, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		zap.S().Warnf("upstream answered %d for %s", response.StatusCode, req.URL.Path)
	}

	return result, nil
}

package domkit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/domkit/domkit/internal/config"
	"github.com/domkit/domkit/internal/httpclient"
)

// SuccessFunc receives the parsed response body. A body that is not
// valid JSON degrades to an empty object; it is not an error.
type SuccessFunc func(body map[string]interface{})

// ErrorFunc receives the transport failure. Server-side errors with a
// well-formed response do not reach it.
type ErrorFunc func(err error)

func httpConfig(cfg *config.Config) httpclient.Config {
	return httpclient.Config{
		Timeout:   time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
		Retries:   cfg.HTTP.Retries,
		RateLimit: cfg.HTTP.RateLimit,
		Token:     cfg.HTTP.Token,
	}
}

// SetToken replaces the bearer token carried by subsequent requests.
func (d *Doc) SetToken(token string) {
	d.http.SetToken(token)
}

// AjaxGet issues an authenticated GET and invokes exactly one of the
// callbacks exactly once, on a separate goroutine. There is no retry
// and no cancellation surface; issuing the same request twice
// produces two independent completions.
func (d *Doc) AjaxGet(url string, onSuccess SuccessFunc, onError ErrorFunc) {
	go func() {
		resp, err := d.http.Get(context.Background(), url)
		if err != nil {
			d.log.Warn("request failed", zap.String("url", url), zap.Error(err))
			if onError != nil {
				onError(err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(ParseJSON(resp.String()))
		}
	}()
}

// AjaxPost issues an authenticated POST with body serialized to JSON
// and the same completion contract as AjaxGet.
func (d *Doc) AjaxPost(url string, body interface{}, onSuccess SuccessFunc, onError ErrorFunc) {
	payload := []byte(Stringify(body))

	go func() {
		resp, err := d.http.PostJSON(context.Background(), url, payload)
		if err != nil {
			d.log.Warn("request failed", zap.String("url", url), zap.Error(err))
			if onError != nil {
				onError(err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(ParseJSON(resp.String()))
		}
	}()
}

// Package scraper holds what the job-board clients share: the resty client
// setup, request pacing and the error returned for unsuccessful responses.
package scraper

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"vacancy-stats/utils"
)

// StatusError is returned when a source answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.URL, e.Status)
}

// NewClient returns a resty client for baseURL that waits on throttle before
// every request and logs requests under tag. Retries stay disabled.
func NewClient(baseURL, tag string, throttle *utils.Throttle, logger *utils.Logger) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if throttle != nil {
			if err := throttle.Wait(req.Context()); err != nil {
				return err
			}
		}
		logger.Debug("[%s] GET %s %v", tag, req.URL, req.QueryParam)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		logger.Debug("[%s] %s %s -> %d in %v",
			tag, res.Request.Method, res.Request.URL, res.StatusCode(), res.Time())
		return nil
	})

	return client
}

// CheckResponse turns a transport error or a non-2xx response into an error.
func CheckResponse(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return &StatusError{
			Method:     res.Request.Method,
			URL:        res.Request.URL,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
	}
	return nil
}

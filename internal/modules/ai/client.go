package ai

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/reusedev/tutor-voice/internal/modules/http_client"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
	"github.com/reusedev/tutor-voice/tools"
)

const errNoAPIKey = "API key is not configured"

// Descriptor is the input of exactly one outbound request.
type Descriptor struct {
	Path       string
	Body       []byte
	Credential string
	Model      string
}

// Dispatcher sends one descriptor and returns the raw body of a 2xx response.
type Dispatcher interface {
	Post(ctx context.Context, d Descriptor) ([]byte, error)
}

// Outcome is what a Recorder sees after each round trip.
type Outcome struct {
	Path       string
	Model      string
	StatusCode int
	Duration   time.Duration
	Body       []byte
	Err        error
}

func (o *Outcome) Succeed() bool {
	return o.Err == nil
}

type Recorder interface {
	Record(ctx context.Context, o *Outcome) error
}

type Client struct {
	baseURL  string
	http     *http_client.HttpClient
	recorder Recorder
}

func NewClient(baseURL string, httpClient *http_client.HttpClient, recorder Recorder) *Client {
	if httpClient == nil {
		httpClient = http_client.New()
	}
	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		recorder: recorder,
	}
}

func (c *Client) Post(ctx context.Context, d Descriptor) ([]byte, error) {
	if d.Credential == "" {
		logs.Logger.Error().Str("path", d.Path).Msg(errNoAPIKey)
		return nil, NewError(KindConfiguration, errNoAPIKey)
	}
	outcome := c.do(ctx, d)
	c.record(ctx, outcome)
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	return outcome.Body, nil
}

func (c *Client) do(ctx context.Context, d Descriptor) *Outcome {
	ret := &Outcome{Path: d.Path, Model: d.Model}
	req, err := c.http.NewRequest(
		http.MethodPost,
		tools.FullURL(c.baseURL, d.Path),
		http_client.WithHeader("Authorization", "Bearer "+d.Credential),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBody(d.Body),
		http_client.WithContext(ctx),
	)
	if err != nil {
		ret.Err = Errorf(KindTransport, "Error: %w\nResponse: ", err)
		return ret
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		ret.Duration = time.Since(start)
		ret.Err = Errorf(KindTransport, "Error: %w\nResponse: ", err)
		c.logFailure(ret, "")
		return ret
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	ret.Duration = time.Since(start)
	ret.StatusCode = resp.StatusCode
	if err != nil {
		ret.Err = Errorf(KindTransport, "Error: %w\nResponse: %s", err, body)
		c.logFailure(ret, string(body))
		return ret
	}
	logs.Logger.Info().Str("path", d.Path).
		Str("model", d.Model).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("duration", ret.Duration).
		Int("body_size", len(body)).
		Msg("api request")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ret.Body = body
		ret.Err = NewError(KindTransport, "Error: HTTP/1.1 "+resp.Status+"\nResponse: "+string(body))
		c.logFailure(ret, string(body))
		return ret
	}
	ret.Body = body
	return ret
}

func (c *Client) logFailure(o *Outcome, body string) {
	logs.Logger.Warn().Str("path", o.Path).
		Str("model", o.Model).
		Int("status_code", o.StatusCode).
		Dur("duration", o.Duration).
		Str("body", body).
		Err(o.Err).
		Msg("api request failed")
}

func (c *Client) record(ctx context.Context, o *Outcome) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(ctx, o); err != nil {
		logs.Logger.Err(err).Str("path", o.Path).Msg("record api request")
	}
}

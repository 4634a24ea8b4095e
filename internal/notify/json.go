package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"strconv"

	"github.com/tphakala/gonotify/internal/httpclient"
)

const (
	jsonSchema       = "json"
	jsonSecureSchema = "jsons"

	// jsonPayloadVersion identifies the payload schema. The major only
	// changes when the entire schema does; adding or removing fields
	// increments the minor.
	jsonPayloadVersion = "1.0"
)

// httpErrorText maps the HTTP status codes commonly returned by
// notification endpoints to human-readable descriptions. Codes not listed
// are logged bare.
var httpErrorText = map[int]string{
	400: "Bad Request - Unsupported Parameters.",
	401: "Verification Failed.",
	404: "Page not found.",
	405: "Method not allowed.",
	500: "Internal server error.",
	503: "Servers are overloaded.",
}

// jsonPayload is the fixed four-field body POSTed to the endpoint.
type jsonPayload struct {
	Version string `json:"version"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// JSON delivers a notification as a single HTTP POST with a JSON body to
// a configured host and path. Custom request headers come from the URL
// query string.
type JSON struct {
	base
	schema   string
	fullpath string
	headers  map[string]string
	client   *httpclient.Client
}

func init() {
	register(Service{
		Name:    "JSON",
		Schemes: []string{jsonSchema, jsonSecureSchema},
		Factory: func(cfg *Config, env *Env) (Notifier, error) {
			return NewJSON(cfg, env)
		},
	})
}

// NewJSON builds the HTTP-JSON notifier. The custom headers are copied
// out of the config's query namespaces into a private map, so later
// mutation of the source never affects the instance.
func NewJSON(cfg *Config, env *Env) (*JSON, error) {
	if cfg == nil {
		cfg = newConfig()
	}

	j := &JSON{
		schema:   "http",
		fullpath: "/",
		headers:  map[string]string{},
	}
	j.base = newBase(cfg, env, j.Traits(), jsonSchema)

	if cfg.Secure {
		j.schema = "https"
	}
	if cfg.FullPath != "" {
		j.fullpath = cfg.FullPath
	}
	maps.Copy(j.headers, cfg.Headers())

	j.client = httpclient.New(&httpclient.Config{
		UserAgent:          j.appID,
		InsecureSkipVerify: !cfg.Verify,
	})

	return j, nil
}

// Headers returns a copy of the configured custom headers.
func (j *JSON) Headers() map[string]string {
	headers := make(map[string]string, len(j.headers))
	maps.Copy(headers, j.headers)
	return headers
}

// Traits declares a conventional title slot and no provider-side request
// rate; JSON endpoints are typically local.
func (j *JSON) Traits() Traits {
	tr := Traits{
		ServiceName: "JSON",
		TitleMaxLen: 250,
		BodyMaxLen:  32768,
		Format:      FormatText,
		Overflow:    OverflowUpstream,
		RequestRate: 0,
	}
	if j.cfg != nil {
		tr.Format = j.cfg.Format
		tr.Overflow = j.cfg.Overflow
	}
	return tr
}

// Send performs one HTTP POST attempt. Transport failures and non-OK
// status codes both reduce to a false return plus log lines; there are no
// retries at this layer.
func (j *JSON) Send(ctx context.Context, body, title string, notifyType Type) bool {
	payload := jsonPayload{
		Version: jsonPayloadVersion,
		Title:   title,
		Message: body,
		Type:    string(notifyType),
	}
	data, err := json.Marshal(&payload)
	if err != nil {
		j.log.Warn("failed to serialize JSON notification payload")
		j.log.Debug("marshal exception", "error", err)
		return false
	}

	// Fixed defaults first, then the configured custom headers so a
	// user-supplied value wins on collision.
	headers := map[string]string{
		"User-Agent":   j.appID,
		"Content-Type": "application/json",
	}
	maps.Copy(headers, j.headers)

	targetURL := j.schema + "://" + j.cfg.Host
	if j.cfg.Port != 0 {
		targetURL += ":" + strconv.Itoa(j.cfg.Port)
	}
	targetURL += j.fullpath

	j.log.Debug("JSON POST URL", "url", targetURL, "cert_verify", j.cfg.Verify)
	j.log.Debug("JSON payload", "payload", string(data))

	// Always call throttle before any remote server i/o is made.
	j.throttle.Throttle(ctx)

	resp, err := j.post(ctx, targetURL, headers, data)
	if err != nil {
		j.log.Warn("a connection error occurred sending JSON notification",
			"host", j.cfg.Host)
		j.log.Debug("socket exception", "error", err)
		return false
	}
	defer httpclient.DrainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		if description, ok := httpErrorText[resp.StatusCode]; ok {
			j.log.Warn("failed to send JSON notification",
				"description", description, "status_code", resp.StatusCode)
		} else {
			j.log.Warn("failed to send JSON notification",
				"status_code", resp.StatusCode)
		}
		return false
	}

	j.log.Info("sent JSON notification")
	return true
}

// post assembles and executes the request.
func (j *JSON) post(ctx context.Context, targetURL string, headers map[string]string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// Basic auth is present iff a user was configured; the password may
	// be empty.
	if j.cfg.User != "" {
		req.SetBasicAuth(j.cfg.User, j.cfg.Password)
	}
	return j.client.Do(ctx, req)
}

// URL serializes the instance back into a provider URL. Custom headers
// are re-emitted uniformly with a '+' prefix regardless of which
// namespace supplied them.
func (j *JSON) URL() string {
	args := map[string]string{
		"format":   string(j.cfg.Format),
		"overflow": string(j.cfg.Overflow),
	}
	for k, v := range j.headers {
		args["+"+k] = v
	}

	defaultPort := 80
	schema := jsonSchema
	if j.cfg.Secure {
		defaultPort = 443
		schema = jsonSecureSchema
	}

	return schema + "://" +
		formatAuth(j.cfg.User, j.cfg.Password) +
		j.cfg.Host +
		formatPort(j.cfg.Port, defaultPort) +
		j.fullpath + "?" + urlencode(args)
}

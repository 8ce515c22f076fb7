package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"wired-people-backend/lib/apperrors"
)

// Provider is the authenticated REST gateway to the recruitment backend.
// Every call carries an explicit bearer token; there is no ambient session.
type Provider interface {
	Get(ctx context.Context, token, path string, query url.Values, out interface{}) error
	GetPaged(ctx context.Context, token, path string, query url.Values) (PagedData, error)
	Post(ctx context.Context, token, path string, body interface{}, out interface{}) error
	Patch(ctx context.Context, token, path string, body interface{}, out interface{}) error
	Delete(ctx context.Context, token, path string) error
}

var Instance Provider

type impl struct {
	host       string
	httpClient *http.Client
}

func NewProvider(host string, timeout time.Duration) {
	Instance = &impl{
		host: host,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PageQuery builds the backend's pagination keys. Pages are 1-indexed and
// the keys are capitalized, matching the upstream convention.
func PageQuery(pageNumber, pageSize int) url.Values {
	query := url.Values{}
	query.Set("PageNumber", fmt.Sprintf("%v", pageNumber))
	query.Set("PageSize", fmt.Sprintf("%v", pageSize))
	return query
}

func (i impl) Get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	uri := i.buildUri(path, query)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	return i.sendRequest(i.getLogger(uri), r, out, token)
}

func (i impl) GetPaged(ctx context.Context, token, path string, query url.Values) (PagedData, error) {
	uri := i.buildUri(path, query)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return PagedData{}, errors.Wrap(err, "failed to build request")
	}
	var raw json.RawMessage
	if err = i.sendRequest(i.getLogger(uri), r, &raw, token); err != nil {
		return PagedData{}, err
	}
	return ParsePaged(raw)
}

func (i impl) Post(ctx context.Context, token, path string, body interface{}, out interface{}) error {
	return i.sendWithBody(ctx, token, http.MethodPost, path, body, out)
}

func (i impl) Patch(ctx context.Context, token, path string, body interface{}, out interface{}) error {
	return i.sendWithBody(ctx, token, http.MethodPatch, path, body, out)
}

func (i impl) Delete(ctx context.Context, token, path string) error {
	uri := i.buildUri(path, nil)
	r, err := http.NewRequestWithContext(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	return i.sendRequest(i.getLogger(uri), r, nil, token)
}

func (i impl) sendWithBody(ctx context.Context, token, method, path string, body interface{}, out interface{}) error {
	uri := i.buildUri(path, nil)
	logger := i.getLogger(uri)

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to serialize request body")
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewBuffer(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(logger.WithField("request_body", string(payload)), r, out, token)
}

func (i impl) buildUri(path string, query url.Values) string {
	uri := i.host + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	return uri
}

func (i impl) getLogger(uri string) *log.Entry {
	return log.WithField("external_request", uri)
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, out interface{}, token string) error {
	r.Header.Add("User-Agent", "WiredPeople/1.0")
	r.Header.Add("Accept", "application/json")
	if token == "" {
		return apperrors.AuthenticationRequired("authentication token required")
	}
	r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", token))

	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("upstream request failed")
		return apperrors.Upstream(err, "recruitment backend unreachable")
	}
	defer response.Body.Close()

	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if out == nil || len(responseBody) == 0 {
			return nil
		}
		if err = json.Unmarshal(responseBody, out); err != nil {
			return apperrors.Upstream(err, "failed to parse upstream response")
		}
		return nil
	}

	logger = logger.WithField("response_body", string(responseBody)).
		WithField("status_code", response.StatusCode)
	logger.Error("upstream request rejected")

	switch response.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.AuthenticationRequired("authentication token rejected")
	case http.StatusNotFound:
		return apperrors.NotFound("not found")
	case http.StatusConflict:
		return apperrors.Conflict("resource was modified concurrently")
	}
	return apperrors.Upstream(errors.Errorf("upstream status %v", response.StatusCode),
		"recruitment backend request failed")
}

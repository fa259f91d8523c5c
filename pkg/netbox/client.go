// Package netbox is a typed client for the NetBox-shaped REST inventory of
// record: devices, interfaces, IP addresses, VLANs, cables, inventory
// items, and the supporting catalog objects (manufacturers, sites, device
// types/roles, platforms), per spec.md §4.6. Reads paginate transparently;
// writes use a get-or-create-by-natural-key pattern so the reconciler
// never has to track NetBox's internal IDs across runs.
package netbox

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"

	"github.com/meridian-net/netcollector/pkg/collectorerr"
	"github.com/meridian-net/netcollector/pkg/util"
)

// Client wraps a resty.Client configured for token auth against one NetBox
// base URL.
type Client struct {
	http *resty.Client
}

// Options parameterizes client construction.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retries int
}

// DefaultOptions returns the spec.md §5 default HTTP timeout/retry budget.
func DefaultOptions() Options {
	return Options{Timeout: 30 * time.Second, Retries: 3}
}

// New builds a Client. BaseURL must be the NetBox root, e.g.
// "https://netbox.example.com".
func New(opts Options) *Client {
	h := resty.New().
		SetBaseURL(opts.BaseURL + "/api").
		SetHeader("Authorization", "Token "+opts.Token).
		SetHeader("Accept", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(1 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	return &Client{http: h}
}

// page is NetBox's standard paginated-list envelope.
type page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}

// ListParams encodes common filter/pagination query parameters. Entity
// filters that don't fit these common fields are passed via Extra.
type ListParams struct {
	Limit  int               `url:"limit,omitempty"`
	Offset int               `url:"offset,omitempty"`
	Extra  map[string]string `url:"-"`
}

func (p ListParams) encode() (string, error) {
	values, err := query.Values(p)
	if err != nil {
		return "", err
	}
	for k, v := range p.Extra {
		values.Set(k, v)
	}
	return values.Encode(), nil
}

// listAll follows every "next" page link and returns the concatenated
// results, per spec.md §4.6 ("pagination is never surfaced to callers").
func listAll[T any](ctx context.Context, c *Client, path string, params ListParams) ([]T, error) {
	qs, err := params.encode()
	if err != nil {
		return nil, collectorerr.NewInventoryAPIError(0, err)
	}

	url := path
	if qs != "" {
		url = path + "?" + qs
	}

	var all []T
	for url != "" {
		logRequest("list", url)
		var body page[T]
		resp, err := c.http.R().SetContext(ctx).SetResult(&body).Get(url)
		if err != nil {
			return nil, collectorerr.NewInventoryConnectionError(err)
		}
		if resp.IsError() {
			return nil, collectorerr.NewInventoryAPIError(resp.StatusCode(), fmt.Errorf("%s", resp.String()))
		}
		all = append(all, body.Results...)
		url = relativeNext(body.Next)
	}
	return all, nil
}

// relativeNext strips the scheme/host NetBox echoes back in "next" so
// resty re-resolves it against the client's configured BaseURL.
func relativeNext(next string) string {
	if next == "" {
		return ""
	}
	if i := indexAPI(next); i >= 0 {
		return next[i+len("/api"):]
	}
	return next
}

func indexAPI(s string) int {
	for i := 0; i+4 <= len(s); i++ {
		if s[i:i+4] == "/api" {
			return i
		}
	}
	return -1
}

// get fetches a single object by path.
func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get(path)
	if err != nil {
		return nil, collectorerr.NewInventoryConnectionError(err)
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if resp.IsError() {
		return nil, collectorerr.NewInventoryAPIError(resp.StatusCode(), fmt.Errorf("%s", resp.String()))
	}
	return &out, nil
}

// create POSTs body and decodes the created object.
func create[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	var out T
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post(path)
	if err != nil {
		return nil, collectorerr.NewInventoryConnectionError(err)
	}
	if resp.IsError() {
		return nil, collectorerr.NewInventoryAPIError(resp.StatusCode(), fmt.Errorf("%s", resp.String()))
	}
	return &out, nil
}

// patch PATCHes body at path/id and decodes the updated object.
func patch[T any](ctx context.Context, c *Client, path string, id int, body interface{}) (*T, error) {
	var out T
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Patch(fmt.Sprintf("%s%d/", path, id))
	if err != nil {
		return nil, collectorerr.NewInventoryConnectionError(err)
	}
	if resp.IsError() {
		return nil, collectorerr.NewInventoryAPIError(resp.StatusCode(), fmt.Errorf("%s", resp.String()))
	}
	return &out, nil
}

// del DELETEs the object at path/id.
func del(ctx context.Context, c *Client, path string, id int) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("%s%d/", path, id))
	if err != nil {
		return collectorerr.NewInventoryConnectionError(err)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return collectorerr.NewInventoryAPIError(resp.StatusCode(), fmt.Errorf("%s", resp.String()))
	}
	return nil
}

func logRequest(op, path string) {
	util.Logger.WithField("op", op).WithField("path", path).Debug("netbox request")
}

package paintings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// DefaultMetBaseURL is the public Met collection API.
const DefaultMetBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// searchQuery returns public-domain painting objects that have images.
const searchQuery = "hasImages=true&medium=Paintings&isPublicDomain=true&q=*"

// MetClient talks to the Met museum collection API.
type MetClient struct {
	baseURL string
	client  *fasthttp.Client
}

// NewMetClient creates a client against baseURL (DefaultMetBaseURL in
// production; tests point it at a local stub server).
func NewMetClient(baseURL string) *MetClient {
	return &MetClient{
		baseURL: baseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     64,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// SearchObjectIDs returns every candidate object id matching the painting
// search query.
func (c *MetClient) SearchObjectIDs(ctx context.Context) ([]int, error) {
	url := fmt.Sprintf("%s/search?%s", c.baseURL, searchQuery)
	resp, err := doRequest[searchResponse](ctx, c, url)
	if err != nil {
		return nil, err
	}
	return resp.ObjectIDs, nil
}

// GetObject fetches the full catalog record for one object id.
func (c *MetClient) GetObject(ctx context.Context, objectID int) (*Record, error) {
	url := fmt.Sprintf("%s/objects/%d", c.baseURL, objectID)
	return doRequest[Record](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *MetClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if deadline, ok := ctx.Deadline(); ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("met api: status %d for %s", resp.StatusCode(), url)
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("met api: decoding %s: %w", url, err)
	}
	return &result, nil
}

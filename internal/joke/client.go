package joke

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/contract"
)

const userAgent = "fractal-rotation-bot (https://github.com/diegoclair/fractal-rotation-bot)"

type client struct {
	url        string
	httpClient *http.Client
}

// New returns a JokeProvider reading jokes from url. A nil httpClient uses
// http.DefaultClient.
func New(url string, httpClient *http.Client) contract.JokeProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{url: url, httpClient: httpClient}
}

type jokeResponse struct {
	ID     string `json:"id"`
	Joke   string `json:"joke"`
	Status int    `json:"status"`
}

func (c *client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create joke request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "joke request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.Newf("joke api returned status %d: %s", resp.StatusCode, string(body))
	}

	var out jokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode joke response")
	}

	joke := strings.TrimSpace(out.Joke)
	if joke == "" {
		return "", errors.New("joke api returned an empty joke")
	}

	return joke, nil
}

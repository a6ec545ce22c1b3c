package fixer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

const (
	latestRatesUrl = "https://api.apilayer.com/fixer/latest"
	baseParam      = "base"
	relativesParam = "symbols"
	requestTimeout = 10 * time.Second
)

type apiKeyGetter interface {
	ApiKey() string
}

type Client struct {
	apiKey string
	url    string
	http   *http.Client
}

type ratesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Error     *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

func New(getter apiKeyGetter) (*Client, error) {
	if getter.ApiKey() == "" {
		return nil, errors.New("fixer api key is not configured")
	}
	return &Client{
		apiKey: getter.ApiKey(),
		url:    latestRatesUrl,
		http:   &http.Client{Timeout: requestTimeout},
	}, nil
}

func (c *Client) GetRates(ctx context.Context, baseRate string, relativeRates []string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	req.Header.Set("apikey", c.apiKey)
	q := req.URL.Query()
	q.Add(baseParam, baseRate)
	q.Add(relativesParam, strings.Join(relativeRates, ","))
	req.URL.RawQuery = q.Encode()

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request fixer")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	logger.Debug("new response from fixer", zap.Int("status", res.StatusCode), zap.Int("bytes", len(body)))

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fixer answered %s", res.Status)
	}

	rates := ratesResponse{}
	if err = json.Unmarshal(body, &rates); err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	if !rates.Success {
		if rates.Error != nil {
			return nil, errors.Errorf("error from fixer: %d %s", rates.Error.Code, rates.Error.Info)
		}
		return nil, errors.New("error from fixer (success = false)")
	}

	return rates.Rates, nil
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger

	apiKey string
}

func NewClientController(
	client *http.Client,
	apiKey string,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

var (
	ErrCodeUnknownOrderSent = -2011
	ErrCodeInvalidSymbol    = -1121

	ErrUnknownOrderSent = fmt.Errorf("%s", "Unknown order sent.")
	ErrInvalidSymbol    = fmt.Errorf("%s", "Invalid symbol.")
)

type ErrStruct struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *ErrStruct) Error() string {
	return fmt.Sprintf("code %d; msg %s", e.Code, e.Msg)
}

func (c *ClientController) Send(ctx context.Context, method string, url *url.URL, body []byte, useApiKey bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if useApiKey {
		req.Header.Add("X-MBX-APIKEY", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errMsg ErrStruct
		if err := json.Unmarshal(out, &errMsg); err == nil && errMsg.Msg != "" {
			switch errMsg.Code {
			case ErrCodeUnknownOrderSent:
				return nil, ErrUnknownOrderSent
			case ErrCodeInvalidSymbol:
				return nil, ErrInvalidSymbol
			}

			c.logger.
				WithField("method", method).
				WithField("path", url.Path).
				Debug(errMsg.Error())

			return nil, &errMsg
		}

		return nil, errors.Errorf("statusCode %d; resp %s;", resp.StatusCode, out)
	}

	return out, nil
}

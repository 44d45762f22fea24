// Package exchange is a signed REST client for the Binance USDⓈ-M
// futures API, covering the order, market-data and account endpoints
// the dashboard needs.
package exchange

import (
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amanagarwal13/Binanace-Trading/internal/controllers"
)

const (
	orderUrlPath        = "/fapi/v1/order"
	orderOCOUrlPath     = "/fapi/v1/order/oco"
	orderAllUrlPath     = "/fapi/v1/allOrders"
	orderOpenUrlPath    = "/fapi/v1/openOrders"
	accountUrlPath      = "/fapi/v2/account"
	ticker24hUrlPath    = "/fapi/v1/ticker/24hr"
	tickerPriceUrlPath  = "/fapi/v1/ticker/price"
	exchangeInfoUrlPath = "/fapi/v1/exchangeInfo"

	recvWindow = "60000"
)

type Exchange struct {
	clientController controllers.ClientCtrl
	cryptoController controllers.CryptoCtrl

	url string

	logger *logrus.Logger
}

func NewExchange(
	client controllers.ClientCtrl,
	crypto controllers.CryptoCtrl,
	url string,
	logger *logrus.Logger,
) *Exchange {
	return &Exchange{
		clientController: client,
		cryptoController: crypto,
		url:              url,
		logger:           logger,
	}
}

// signedURL builds the request URL for urlPath with q signed the way the
// futures API expects: timestamp and recvWindow folded into the query, the
// HMAC signature appended last.
func (e *Exchange) signedURL(urlPath string, q url.Values) (*url.URL, error) {
	baseURL, err := url.Parse(e.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(urlPath)

	if q == nil {
		q = url.Values{}
	}
	q.Set("recvWindow", recvWindow)
	q.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	sig := e.cryptoController.GetSignature(q.Encode())
	q.Set("signature", sig)

	baseURL.RawQuery = q.Encode()

	return baseURL, nil
}

// publicURL builds the request URL for an unsigned market-data endpoint.
func (e *Exchange) publicURL(urlPath string, q url.Values) (*url.URL, error) {
	baseURL, err := url.Parse(e.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(urlPath)

	if q != nil {
		baseURL.RawQuery = q.Encode()
	}

	return baseURL, nil
}

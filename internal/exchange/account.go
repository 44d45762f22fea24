package exchange

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// Account returns the futures account state, including per-asset balances.
func (e *Exchange) Account(ctx context.Context) (*structs.Account, error) {
	baseURL, err := e.signedURL(accountUrlPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "account info")
	}

	var out structs.Account
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

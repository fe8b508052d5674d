package clients

import (
	"context"
	"net/http"
)

// TokenClient exchanges a master-node operator identity for a platform
// API token.
type TokenClient struct {
	caller *Caller
}

// NewTokenClient creates a new TokenClient.
func NewTokenClient(caller *Caller) *TokenClient {
	return &TokenClient{caller: caller}
}

type tokenRequest struct {
	MasterNodeID string `json:"masterNodeId"`
}

type tokenData struct {
	Token string `json:"token"`
}

// Generate requests a fresh platform token for the given operator
// identity. No credential is attached; the exchange endpoint is the one
// unauthenticated call the gateway makes.
func (c *TokenClient) Generate(ctx context.Context, masterNodeID string) (string, error) {
	env, err := c.caller.JSON(ctx, http.MethodPost, "/api/v1/auth/master-node/token", "",
		tokenRequest{MasterNodeID: masterNodeID})
	if err != nil {
		return "", err
	}

	var data tokenData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", &Error{Message: msgFailed}
	}
	return data.Token, nil
}

package types

import (
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
)

// SendTransactionRequest is the send-flow payload.
type SendTransactionRequest struct {
	Recipient    string `json:"recipient"`
	Amount       string `json:"amount"`
	AssetID      string `json:"assetId"`
	UseSponsored *bool  `json:"useSponsored,omitempty"`
}

// SignMessageRequest asks the active backend to sign a personal message.
type SignMessageRequest struct {
	Message *string `json:"message"`
}

func (r *SignMessageRequest) Validate() error {
	if r.Message == nil || *r.Message == "" {
		return errors.New("message is required")
	}

	return nil
}

// SignMessageResponse carries the signature together with the original
// message, the payload of the host's message-signed callback.
type SignMessageResponse struct {
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// SwitchChainRequest asks the active backend to move to another chain.
type SwitchChainRequest struct {
	ChainID *int64 `json:"chainId"`
}

func (r *SwitchChainRequest) Validate() error {
	if r.ChainID == nil || *r.ChainID <= 0 {
		return errors.New("a positive chainId is required")
	}

	return nil
}

// SwitchChainResponse confirms the chain the wallet now reports.
type SwitchChainResponse struct {
	ChainID int64 `json:"chainId"`
}

// UpdatePreferencesRequest toggles the orchestrator preference flags.
// Absent fields are left unchanged.
type UpdatePreferencesRequest struct {
	PreferSmartAccount *bool `json:"preferSmartAccount,omitempty"`
	SponsoredEnabled   *bool `json:"sponsoredEnabled,omitempty"`
}

func (r *UpdatePreferencesRequest) Validate() error {
	if r.PreferSmartAccount == nil && r.SponsoredEnabled == nil {
		return errors.New("at least one preference must be provided")
	}

	return nil
}

// PreferencesResponse reports the effective preference flags.
type PreferencesResponse struct {
	Mode               string `json:"mode"`
	PreferSmartAccount bool   `json:"preferSmartAccount"`
	SponsoredEnabled   bool   `json:"sponsoredEnabled"`
	SmartAccountActive bool   `json:"smartAccountActive"`
}

// MaxAmountResponse is the formatted full balance of an asset.
type MaxAmountResponse struct {
	AssetID string `json:"assetId"`
	Amount  string `json:"amount"`
}

// GetVersionResponse reports the build metadata.
type GetVersionResponse struct {
	Version *string `json:"version"`
}

// NewGetVersionResponse assembles a version payload.
func NewGetVersionResponse(version string) *GetVersionResponse {
	return &GetVersionResponse{Version: swag.String(version)}
}

package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ERC20 describes a token the panel displays. Supplied by the host,
// immutable.
type ERC20 struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// Validate checks the descriptor fields the balance reads depend on.
func (t ERC20) Validate() error {
	if !common.IsHexAddress(t.Address) {
		return errors.Errorf("invalid token contract address %q", t.Address)
	}

	if t.Symbol == "" {
		return errors.New("token symbol must not be empty")
	}

	if t.Decimals < 0 {
		return errors.Errorf("token %s has negative decimals", t.Symbol)
	}

	return nil
}

// FormatUnits renders an integer base-unit amount as a decimal string
// scaled by decimals. The conversion is exact; ParseUnits inverts it.
func FormatUnits(baseUnits *big.Int, decimals int32) string {
	if baseUnits == nil {
		return "0"
	}

	return decimal.NewFromBigInt(baseUnits, -decimals).String()
}

// ParseUnits scales a decimal string to integer base units. Fractional
// digits beyond decimals are rejected rather than truncated.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid decimal amount %q", amount)
	}

	scaled := value.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, errors.Errorf("amount %q has more than %d decimal places", amount, decimals)
	}

	return scaled.BigInt(), nil
}

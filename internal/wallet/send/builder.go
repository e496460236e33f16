package send

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github/walletpanel/go-wallet-panel/internal/util"
	"github/walletpanel/go-wallet-panel/internal/wallet/signer"
	"github/walletpanel/go-wallet-panel/internal/wallet/state"
	"github/walletpanel/go-wallet-panel/internal/wallet/token"
)

// AssetNative selects the chain's native asset; any other asset id is a
// token contract address from the wallet state.
const AssetNative = "native"

var transferMethodID = common.Hex2Bytes("a9059cbb")

// Input is the raw send form a host submits.
type Input struct {
	Recipient    string `json:"recipient"`
	Amount       string `json:"amount"`
	AssetID      string `json:"assetId"`
	UseSponsored *bool  `json:"useSponsored,omitempty"`
}

// ValidationError reports a single invalid input field. MessageID keys
// into the localized message catalog.
type ValidationError struct {
	Field     string `json:"field"`
	MessageID string `json:"messageId"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.MessageID
}

// Validation message IDs, resolved through the i18n catalog.
const (
	MsgRecipientRequired       = "validation.recipient_required"
	MsgInvalidRecipient        = "validation.invalid_recipient"
	MsgAmountRequired          = "validation.amount_required"
	MsgInvalidAmount           = "validation.invalid_amount"
	MsgInsufficientBalance     = "validation.insufficient_balance"
	MsgTokenRecipientMustBeHex = "validation.token_recipient_must_be_address"
)

// Submitter is the slice of the unified adapter the send flow needs.
type Submitter interface {
	SendTransaction(ctx context.Context, tx *signer.TransactionRequest) (*signer.SendResult, error)
	IsSponsoredEnabled() bool
	SetSponsored(enabled bool) error
	HasSmartAccount() bool
}

// Result is handed to the host's transaction-submitted callback.
// Submitted is the user operation hash when the smart account path was
// used, the transaction hash otherwise.
type Result struct {
	Submitted  string `json:"submitted"`
	Hash       string `json:"hash,omitempty"`
	UserOpHash string `json:"userOpHash,omitempty"`
}

// asset describes the selected asset resolved from the wallet state.
type asset struct {
	id       string
	address  string
	decimals int32
	balance  *big.Int
}

// Builder validates send input against the current wallet snapshot and
// encodes the transaction request.
type Builder struct {
	snapshot state.State
}

func NewBuilder(snapshot state.State) *Builder {
	return &Builder{snapshot: snapshot}
}

// isNameServiceRecipient accepts name-service style recipients such as
// "vitalik.eth". Native transfers may target them; the token path cannot
// since the recipient is ABI-encoded directly.
func isNameServiceRecipient(recipient string) bool {
	if strings.HasPrefix(recipient, "0x") || strings.HasPrefix(recipient, ".") || strings.HasSuffix(recipient, ".") {
		return false
	}

	return strings.Contains(recipient, ".")
}

func (b *Builder) resolveAsset(assetID string) (*asset, bool) {
	if assetID == AssetNative {
		if b.snapshot.NativeBalance == nil {
			return &asset{id: AssetNative, decimals: 18, balance: big.NewInt(0)}, true
		}

		return &asset{
			id:       AssetNative,
			decimals: 18,
			balance:  b.snapshot.NativeBalance.Balance,
		}, true
	}

	for _, tb := range b.snapshot.TokenBalances {
		if strings.EqualFold(tb.Token.Address, assetID) {
			return &asset{
				id:       tb.Token.Address,
				address:  tb.Token.Address,
				decimals: tb.Token.Decimals,
				balance:  tb.Balance,
			}, true
		}
	}

	return nil, false
}

// Validate checks the input and returns one ValidationError per invalid
// field. An empty result means the submit action may be enabled.
func (b *Builder) Validate(input Input) []*ValidationError {
	var errs []*ValidationError

	selected, assetKnown := b.resolveAsset(input.AssetID)

	switch {
	case input.Recipient == "":
		errs = append(errs, &ValidationError{Field: "recipient", MessageID: MsgRecipientRequired})
	case !common.IsHexAddress(input.Recipient) && !isNameServiceRecipient(input.Recipient):
		errs = append(errs, &ValidationError{Field: "recipient", MessageID: MsgInvalidRecipient})
	case assetKnown && selected.id != AssetNative && !common.IsHexAddress(input.Recipient):
		errs = append(errs, &ValidationError{Field: "recipient", MessageID: MsgTokenRecipientMustBeHex})
	}

	if input.Amount == "" {
		errs = append(errs, &ValidationError{Field: "amount", MessageID: MsgAmountRequired})

		return errs
	}

	if !assetKnown {
		errs = append(errs, &ValidationError{Field: "assetId", MessageID: MsgInvalidAmount})

		return errs
	}

	amount, err := token.ParseUnits(input.Amount, selected.decimals)
	if err != nil || amount.Sign() <= 0 {
		errs = append(errs, &ValidationError{Field: "amount", MessageID: MsgInvalidAmount})

		return errs
	}

	balance := selected.balance
	if balance == nil {
		balance = big.NewInt(0)
	}

	if amount.Cmp(balance) > 0 {
		errs = append(errs, &ValidationError{Field: "amount", MessageID: MsgInsufficientBalance})
	}

	return errs
}

// MaxAmount returns the full formatted balance of the selected asset,
// the value behind the panel's "Max" shortcut.
func (b *Builder) MaxAmount(assetID string) (string, error) {
	selected, ok := b.resolveAsset(assetID)
	if !ok {
		return "", errors.Errorf("unknown asset %q", assetID)
	}

	return token.FormatUnits(selected.balance, selected.decimals), nil
}

// EncodeERC20Transfer builds the calldata for transfer(address,uint256).
// The encoding is standard ABI and consumed by real token contracts.
func EncodeERC20Transfer(recipient common.Address, amount *big.Int) []byte {
	const wordLength = 32

	data := make([]byte, 0, len(transferMethodID)+2*wordLength)
	data = append(data, transferMethodID...)
	data = append(data, common.LeftPadBytes(recipient.Bytes(), wordLength)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), wordLength)...)

	return data
}

// Build validates the input and encodes the transaction request. The
// first validation failure is returned as the error.
func (b *Builder) Build(input Input) (*signer.TransactionRequest, error) {
	if errs := b.Validate(input); len(errs) > 0 {
		return nil, errs[0]
	}

	selected, _ := b.resolveAsset(input.AssetID)

	amount, err := token.ParseUnits(input.Amount, selected.decimals)
	if err != nil {
		return nil, &ValidationError{Field: "amount", MessageID: MsgInvalidAmount}
	}

	if selected.id == AssetNative {
		return &signer.TransactionRequest{
			To:    input.Recipient,
			Value: amount,
		}, nil
	}

	return &signer.TransactionRequest{
		To:   selected.address,
		Data: EncodeERC20Transfer(common.HexToAddress(input.Recipient), amount),
	}, nil
}

// Submit builds the request, reconciles the sponsorship preference with
// the adapter and sends the transaction through it.
func (b *Builder) Submit(ctx context.Context, submitter Submitter, input Input) (*Result, error) {
	tx, err := b.Build(input)
	if err != nil {
		return nil, err
	}

	if input.UseSponsored != nil && submitter.HasSmartAccount() {
		if submitter.IsSponsoredEnabled() != *input.UseSponsored {
			if err := submitter.SetSponsored(*input.UseSponsored); err != nil {
				return nil, errors.Wrap(err, "failed to update sponsorship preference")
			}
		}
	}

	sent, err := submitter.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	submitted := sent.Hash
	if sent.UserOpHash != "" {
		submitted = sent.UserOpHash
	}

	util.LogFromContext(ctx).Info().
		Str("asset", input.AssetID).
		Str("submitted", submitted).
		Msg("Send flow submitted transaction")

	return &Result{
		Submitted:  submitted,
		Hash:       sent.Hash,
		UserOpHash: sent.UserOpHash,
	}, nil
}

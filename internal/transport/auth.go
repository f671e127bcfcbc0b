package transport

import (
	"crypto/ecdsa"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/paulrouge/multitoken-presale/internal/clock"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// CallerHeader carries the caller address on REST calls.
	CallerHeader = "X-Caller-Address"
	// SignatureHeader carries the 65 byte [R || S || V] signature of SigningMessage.
	SignatureHeader = "X-Caller-Signature"
	// TimestampHeader carries the unix second the signature was made at.
	TimestampHeader = "X-Caller-Timestamp"

	// CallerMetadataKey carries the caller address on gRPC calls.
	CallerMetadataKey = "x-caller-address"
	// SignatureMetadataKey is the gRPC twin of SignatureHeader.
	SignatureMetadataKey = "x-caller-signature"
	// TimestampMetadataKey is the gRPC twin of TimestampHeader.
	TimestampMetadataKey = "x-caller-timestamp"
)

const defaultMaxSkew = time.Minute

// Credentials are the raw caller claims of one request.
type Credentials struct {
	Address   string
	Signature string
	Timestamp string
}

// Authenticator resolves the caller of operation. A request without a caller address
// resolves to the zero address.
type Authenticator interface {
	Authenticate(operation string, creds Credentials) (model.Address, error)
}

// SigningMessage is the text a caller signs, with the personal_sign prefix, to invoke operation.
func SigningMessage(operation string, caller model.Address, unix int64) []byte {
	return []byte(fmt.Sprintf("%s/%s %s %d", ServiceName, operation, caller.Hex(), unix))
}

func signedMessageHash(msg []byte) []byte {
	return crypto.Keccak256([]byte(fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)))
}

// Sign builds credentials for operation signed by key at now.
func Sign(key *ecdsa.PrivateKey, operation string, now time.Time) (Credentials, error) {
	caller := crypto.PubkeyToAddress(key.PublicKey)
	unix := now.Unix()
	sig, err := crypto.Sign(signedMessageHash(SigningMessage(operation, caller, unix)), key)
	if err != nil {
		return Credentials{}, fmt.Errorf("sign %s: %w", operation, err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return Credentials{
		Address:   caller.Hex(),
		Signature: hexutil.Encode(sig),
		Timestamp: strconv.FormatInt(unix, 10),
	}, nil
}

// SignatureAuthenticator accepts a caller only when the signature recovers to the claimed
// address and was made within maxSkew of the local clock.
type SignatureAuthenticator struct {
	maxSkew time.Duration
	clock   clock.Clock
}

// NewSignatureAuthenticator returns a SignatureAuthenticator. Zero maxSkew means one minute.
func NewSignatureAuthenticator(maxSkew time.Duration, clk clock.Clock) *SignatureAuthenticator {
	if maxSkew <= 0 {
		maxSkew = defaultMaxSkew
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &SignatureAuthenticator{maxSkew: maxSkew, clock: clk}
}

func (a *SignatureAuthenticator) Authenticate(operation string, creds Credentials) (model.Address, error) {
	caller, err := parseCaller(creds.Address)
	if err != nil || caller == model.ZeroAddress {
		return caller, err
	}

	unix, err := strconv.ParseInt(strings.TrimSpace(creds.Timestamp), 10, 64)
	if err != nil {
		return model.ZeroAddress, status.Error(codes.Unauthenticated, "signature timestamp is required")
	}
	skew := a.clock.Now().Sub(time.Unix(unix, 0))
	if skew > a.maxSkew || skew < -a.maxSkew {
		return model.ZeroAddress, status.Errorf(codes.Unauthenticated, "signature timestamp is %s off", skew.Round(time.Second))
	}

	sig, err := hexutil.Decode(strings.TrimSpace(creds.Signature))
	if err != nil || len(sig) != crypto.SignatureLength {
		return model.ZeroAddress, status.Error(codes.Unauthenticated, "malformed caller signature")
	}
	// Wallets produce V as 27 or 28.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(signedMessageHash(SigningMessage(operation, caller, unix)), sig)
	if err != nil {
		return model.ZeroAddress, status.Error(codes.Unauthenticated, "unrecoverable caller signature")
	}
	if signer := crypto.PubkeyToAddress(*pub); signer != caller {
		return model.ZeroAddress, status.Errorf(codes.Unauthenticated, "signature does not belong to %s", caller.Hex())
	}
	return caller, nil
}

// TrustedHeader takes the caller address as given. Use it only behind a proxy that
// authenticates callers and sets the address itself.
type TrustedHeader struct{}

func (TrustedHeader) Authenticate(_ string, creds Credentials) (model.Address, error) {
	return parseCaller(creds.Address)
}

func parseCaller(value string) (model.Address, error) {
	if strings.TrimSpace(value) == "" {
		return model.ZeroAddress, nil
	}
	caller, err := model.ParseAddress(value)
	if err != nil {
		return model.ZeroAddress, status.Errorf(codes.Unauthenticated, "caller address: %v", err)
	}
	return caller, nil
}

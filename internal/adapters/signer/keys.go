package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/domain/config"
)

// KeySigner holds the operator key. The key is parsed on first use so commands
// that never sign do not fail on a missing or malformed key.
type KeySigner struct {
	raw       string
	ephemeral bool // generate a throwaway key when none is configured
	log       *slog.Logger

	once sync.Once
	key  *ecdsa.PrivateKey
	err  error
}

// NewKeySigner creates a signer from the runtime configuration.
// Simulated networks fall back to a generated development key.
func NewKeySigner(cfg *config.RuntimeConfig, log *slog.Logger) *KeySigner {
	return &KeySigner{
		raw:       cfg.PrivateKey,
		ephemeral: cfg.Network != nil && cfg.Network.Simulated,
		log:       log,
	}
}

// FromKey wraps an already parsed key
func FromKey(key *ecdsa.PrivateKey) *KeySigner {
	s := &KeySigner{key: key}
	s.once.Do(func() {})
	return s
}

// ParsePrivateKey parses a hex private key with or without the 0x prefix
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrMissingPrivateKey
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		// Do not echo the key material back
		return nil, fmt.Errorf("%w: expected 32 bytes of hex", domain.ErrInvalidPrivateKey)
	}
	return key, nil
}

// PrivateKey returns the parsed key
func (s *KeySigner) PrivateKey() (*ecdsa.PrivateKey, error) {
	s.once.Do(func() {
		if s.raw == "" && s.ephemeral {
			s.key, s.err = crypto.GenerateKey()
			if s.err == nil && s.log != nil {
				s.log.Debug("generated development key", "address", crypto.PubkeyToAddress(s.key.PublicKey).Hex())
			}
			return
		}
		s.key, s.err = ParsePrivateKey(s.raw)
	})
	return s.key, s.err
}

// Address returns the signer address derived from the key
func (s *KeySigner) Address() (common.Address, error) {
	key, err := s.PrivateKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Transactor returns transaction options bound to the key and chain
func (s *KeySigner) Transactor(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := s.PrivateKey()
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no compiled artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrAmbiguousContract is returned when several artifacts share a contract name
	ErrAmbiguousContract = errors.New("ambiguous contract name")

	// ErrNoBytecode is returned when an artifact has no creation bytecode (interfaces, abstract contracts)
	ErrNoBytecode = errors.New("artifact has no bytecode")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrMethodNotFound is returned when a method is not part of the contract ABI
	ErrMethodNotFound = errors.New("method not found in ABI")

	// ErrNotReadOnly is returned when a state-changing method is used as a read-only call
	ErrNotReadOnly = errors.New("method is not read-only")

	// ErrInvalidArgument is returned when a call argument cannot be converted to its ABI type
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoCode is returned when a call targets an address without contract code
	ErrNoCode = errors.New("no contract code at address")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrMissingPrivateKey is returned when a signer is needed but no key is configured
	ErrMissingPrivateKey = errors.New("no private key configured (set METAMASK_PRIVATE_KEY)")

	// ErrInvalidPrivateKey is returned when the configured key cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrMissingRPCURL is returned when a live network has no RPC endpoint
	ErrMissingRPCURL = errors.New("no RPC URL configured")

	// ErrUnknownNetwork is returned when a network name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrChainIDMismatch is returned when the RPC endpoint reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrMissingAPIKey is returned when verification is requested without an explorer API key
	ErrMissingAPIKey = errors.New("no Etherscan API key configured (set ETHERSCAN_API_KEY)")

	// ErrDeploymentCancelled is returned when the operator declines the deployment prompt
	ErrDeploymentCancelled = errors.New("deployment cancelled")

	// ErrVerificationFailed is returned when explorer verification fails
	ErrVerificationFailed = errors.New("verification failed")
)

// ContractNotFoundError carries the requested name and close matches from the artifact store
type ContractNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *ContractNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("contract %q not found in artifacts (did you compile it?)", e.Name)
	}
	return fmt.Sprintf("contract %q not found in artifacts, did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *ContractNotFoundError) Unwrap() error {
	return ErrContractNotFound
}

// AmbiguousContractError lists the fully qualified names matching a bare contract name
type AmbiguousContractError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousContractError) Error() string {
	return fmt.Sprintf("multiple contracts named %s, use the source:Name form to disambiguate: %s",
		e.Name, strings.Join(e.Matches, ", "))
}

func (e *AmbiguousContractError) Unwrap() error {
	return ErrAmbiguousContract
}

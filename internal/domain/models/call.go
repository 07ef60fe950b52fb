package models

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CallResult holds the decoded return values of a read-only call
type CallResult struct {
	Address common.Address
	Method  string
	Outputs abi.Arguments
	Values  []any
}

// VerificationResult reports the outcome of an explorer verification
type VerificationResult struct {
	Address         common.Address
	Contract        string
	Verifier        string
	AlreadyVerified bool
	URL             string
	Output          string
}

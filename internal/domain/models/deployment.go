package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PendingDeployment is a broadcast contract creation that has not been confirmed yet
type PendingDeployment struct {
	Contract *Contract
	Address  common.Address // address the contract will occupy once mined
	Deployer common.Address
	Tx       *types.Transaction
}

// Deployment is a confirmed contract creation
type Deployment struct {
	ContractName string
	Address      common.Address
	Deployer     common.Address
	TxHash       common.Hash
	BlockNumber  uint64
	GasUsed      uint64
	Network      string
	ChainID      uint64
}

// Account is a signer address and its balance on the selected network
type Account struct {
	Address common.Address
	Balance *big.Int
	Network string
	ChainID uint64
}

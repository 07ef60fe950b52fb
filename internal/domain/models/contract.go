package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract represents information about a compiled contract
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullName returns the "source:Contract" identifier used by verifiers
func (c *Contract) FullName() string {
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// ParsedABI decodes the artifact ABI
func (c *Contract) ParsedABI() (*abi.ABI, error) {
	if c.Artifact == nil || len(c.Artifact.ABI) == 0 {
		return nil, fmt.Errorf("contract %s has no ABI", c.Name)
	}
	parsed, err := abi.JSON(strings.NewReader(string(c.Artifact.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for %s: %w", c.Name, err)
	}
	return &parsed, nil
}

// CreationCode decodes the artifact creation bytecode
func (c *Contract) CreationCode() ([]byte, error) {
	if c.Artifact == nil {
		return nil, nil
	}
	return c.Artifact.Bytecode.Decode()
}

// HexBytecode is a 0x-prefixed hex blob as emitted by the compiler
type HexBytecode string

// IsEmpty reports whether there is no code to deploy
func (b HexBytecode) IsEmpty() bool {
	return b == "" || b == "0x"
}

// IsLinked reports whether all library placeholders have been resolved
func (b HexBytecode) IsLinked() bool {
	return !strings.Contains(string(b), "__$")
}

// Decode converts the hex blob to bytes
func (b HexBytecode) Decode() ([]byte, error) {
	if b.IsEmpty() {
		return nil, nil
	}
	if !b.IsLinked() {
		return nil, fmt.Errorf("bytecode contains unlinked library references")
	}
	s := string(b)
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

// Artifact represents a Hardhat compilation artifact
type Artifact struct {
	Format           string                    `json:"_format"`
	ContractName     string                    `json:"contractName"`
	SourceName       string                    `json:"sourceName"`
	ABI              json.RawMessage           `json:"abi"`
	Bytecode         HexBytecode               `json:"bytecode"`
	DeployedBytecode HexBytecode               `json:"deployedBytecode"`
	LinkReferences   map[string]map[string]any `json:"linkReferences"`
}

// Package testutil holds fixtures shared by adapter and CLI tests.
package testutil

import (
	"crypto/ecdsa"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// OwnableABI exposes the single accessor the fixture contract implements
const OwnableABI = `[
  {"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
  {"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
  {"inputs":[{"internalType":"uint256","name":"amount","type":"uint256"}],"name":"fund","outputs":[],"stateMutability":"payable","type":"function"}
]`

// OwnableRuntime stores nothing but returns slot 0 for owner() and reverts on any other selector.
const OwnableRuntime = "60003560e01c638da5cb5b14601357600080fd5b60005460005260206000f3"

// OwnableBytecode writes CALLER to slot 0 and returns OwnableRuntime
const OwnableBytecode = "0x33600055601f80600f6000396000f3" + OwnableRuntime

// SolarInsuranceArtifact is a Hardhat artifact for the fixture contract
const SolarInsuranceArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "SolarInsurance",
  "sourceName": "contracts/SolarInsurance.sol",
  "abi": ` + OwnableABI + `,
  "bytecode": "` + OwnableBytecode + `",
  "deployedBytecode": "0x` + OwnableRuntime + `",
  "linkReferences": {},
  "deployedLinkReferences": {}
}`

// InterfaceArtifact has an ABI but nothing to deploy
const InterfaceArtifact = `{
  "_format": "hh-sol-artifact-1",
  "contractName": "IPolicy",
  "sourceName": "contracts/interfaces/IPolicy.sol",
  "abi": [{"inputs":[],"name":"premium","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}],
  "bytecode": "0x",
  "deployedBytecode": "0x",
  "linkReferences": {},
  "deployedLinkReferences": {}
}`

// DevKeyHex is a well-known development key, never funded on a live chain
const DevKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcaee784d7bf4f2ff80"

// DevKey returns the parsed development key
func DevKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()
	key, err := crypto.HexToECDSA(DevKeyHex)
	require.NoError(t, err)
	return key
}

// WriteArtifacts lays out a Hardhat artifact store under dir and returns its path
func WriteArtifacts(t testing.TB, dir string) string {
	t.Helper()
	artifacts := filepath.Join(dir, "artifacts")
	WriteFile(t, filepath.Join(artifacts, "contracts", "SolarInsurance.sol", "SolarInsurance.json"), SolarInsuranceArtifact)
	WriteFile(t, filepath.Join(artifacts, "contracts", "SolarInsurance.sol", "SolarInsurance.dbg.json"), `{"_format":"hh-sol-dbg-1","buildInfo":"../../build-info/1.json"}`)
	WriteFile(t, filepath.Join(artifacts, "contracts", "interfaces", "IPolicy.sol", "IPolicy.json"), InterfaceArtifact)
	WriteFile(t, filepath.Join(artifacts, "build-info", "1.json"), `{"id":"1","solcVersion":"0.8.22"}`)
	return artifacts
}

// WriteFile creates parent directories and writes content
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

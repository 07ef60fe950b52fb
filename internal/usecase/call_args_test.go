package usecase_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/solar-insurance/solar-cli/internal/domain"
	"github.com/solar-insurance/solar-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argsOf(t *testing.T, types ...string) abi.Arguments {
	t.Helper()
	args := make(abi.Arguments, len(types))
	for i, name := range types {
		typ, err := abi.NewType(name, "", nil)
		require.NoError(t, err)
		args[i] = abi.Argument{Type: typ}
	}
	return args
}

func TestParseCallArgs(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		raw     string
		want    any
		wantErr bool
	}{
		{name: "address", typ: "address", raw: deployerAddr.Hex(), want: deployerAddr},
		{name: "bad address", typ: "address", raw: "0x12", wantErr: true},
		{name: "bool", typ: "bool", raw: "true", want: true},
		{name: "string", typ: "string", raw: "hail damage", want: "hail damage"},
		{name: "uint256 decimal", typ: "uint256", raw: "1000000000000000000", want: big.NewInt(1_000_000_000_000_000_000)},
		{name: "uint256 hex", typ: "uint256", raw: "0xff", want: big.NewInt(255)},
		{name: "uint8", typ: "uint8", raw: "255", want: uint8(255)},
		{name: "uint8 overflow", typ: "uint8", raw: "256", wantErr: true},
		{name: "negative uint", typ: "uint64", raw: "-1", wantErr: true},
		{name: "int8 min", typ: "int8", raw: "-128", want: int8(-128)},
		{name: "int8 overflow", typ: "int8", raw: "128", wantErr: true},
		{name: "int256", typ: "int256", raw: "-5", want: big.NewInt(-5)},
		{name: "bytes", typ: "bytes", raw: "0xdead", want: []byte{0xde, 0xad}},
		{name: "bytes without prefix", typ: "bytes", raw: "beef", want: []byte{0xbe, 0xef}},
		{name: "bytes4", typ: "bytes4", raw: "0x8da5cb5b", want: [4]byte{0x8d, 0xa5, 0xcb, 0x5b}},
		{name: "bytes4 wrong size", typ: "bytes4", raw: "0x8da5", wantErr: true},
		{name: "not a number", typ: "uint256", raw: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseCallArgs(argsOf(t, tt.typ), []string{tt.raw})
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestParseCallArgs_Count(t *testing.T) {
	_, err := usecase.ParseCallArgs(argsOf(t, "address", "uint256"), []string{deployerAddr.Hex()})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	got, err := usecase.ParseCallArgs(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseCallArgs_PacksWithABI(t *testing.T) {
	inputs := argsOf(t, "address", "uint16", "bytes32")
	values, err := usecase.ParseCallArgs(inputs, []string{
		deployerAddr.Hex(),
		"2024",
		"0x0000000000000000000000000000000000000000000000000000000000000001",
	})
	require.NoError(t, err)

	packed, err := inputs.Pack(values...)
	require.NoError(t, err)
	assert.Len(t, packed, 96)
}

package usecase

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/solar-insurance/solar-cli/internal/domain"
)

// ParseCallArgs converts command line strings into the Go values abi.Pack expects
func ParseCallArgs(inputs abi.Arguments, raw []string) ([]any, error) {
	if len(inputs) != len(raw) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", domain.ErrInvalidArgument, len(inputs), len(raw))
	}

	args := make([]any, 0, len(raw))
	for i, input := range inputs {
		value, err := parseArg(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("%w: %s (%s): %v", domain.ErrInvalidArgument, name, input.Type.String(), err)
		}
		args = append(args, value)
	}
	return args, nil
}

func parseArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("not an address: %q", s)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return b, nil

	case abi.StringTy:
		return s, nil

	case abi.UintTy, abi.IntTy:
		return parseInteger(t, s)

	case abi.BytesTy:
		b, err := hexutil.Decode(withHexPrefix(s))
		if err != nil {
			return nil, err
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(withHexPrefix(s))
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	default:
		return nil, fmt.Errorf("unsupported argument type")
	}
}

func parseInteger(t abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("not an integer: %q", s)
	}
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, fmt.Errorf("negative value for unsigned type")
	}
	limit, magnitude := t.Size, n
	if t.T == abi.IntTy {
		limit--
		if n.Sign() < 0 {
			// two's complement: -2^(size-1) is the smallest value
			magnitude = new(big.Int).Sub(new(big.Int).Neg(n), big.NewInt(1))
		}
	}
	if magnitude.BitLen() > limit {
		return nil, fmt.Errorf("value overflows %s", t.String())
	}

	goType := t.GetType()
	if goType.Kind() == reflect.Ptr {
		return n, nil
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

func withHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}

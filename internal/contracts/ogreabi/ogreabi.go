// Package ogreabi holds the ABI definitions shared by the OGRE contracts and
// the helpers that turn Go values into EVM-compatible logs, selectors and keys.
package ogreabi

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrUnknownEvent  = errors.New("unknown event")
	ErrUnknownMethod = errors.New("unknown method")
	ErrArgCount      = errors.New("argument count mismatch")
)

var (
	Governance = mustParse(GovernanceABIJSON)
	ERC721     = mustParse(ERC721ABIJSON)
	ERC20      = mustParse(ERC20ABIJSON)

	keyArgs = abi.Arguments{
		{Type: mustType("address")},
		{Type: mustType("uint256")},
		{Type: mustType("string")},
		{Type: mustType("bytes")},
	}
	addressArgs = abi.Arguments{{Type: mustType("address")}}
)

func mustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("ogreabi: invalid ABI definition: %v", err))
	}
	return parsed
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("ogreabi: invalid type %s: %v", t, err))
	}
	return typ
}

// PackEvent encodes an event of the given ABI as a log emitted by contract.
// args follow the order of the event inputs; indexed inputs become topics.
func PackEvent(contractABI abi.ABI, name string, contract common.Address, args ...interface{}) (*types.Log, error) {
	event, ok := contractABI.Events[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
	if len(args) != len(event.Inputs) {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, name, len(event.Inputs), len(args))
	}

	topics := []common.Hash{event.ID}
	var (
		data   abi.Arguments
		values []interface{}
	)
	for i, input := range event.Inputs {
		if !input.Indexed {
			data = append(data, input)
			values = append(values, args[i])
			continue
		}
		rules, err := abi.MakeTopics([]interface{}{args[i]})
		if err != nil {
			return nil, fmt.Errorf("failed to make topic %s.%s: %w", name, input.Name, err)
		}
		topics = append(topics, rules[0][0])
	}

	packed, err := data.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack event %s: %w", name, err)
	}
	return &types.Log{
		Address: contract,
		Topics:  topics,
		Data:    packed,
	}, nil
}

// Selector returns the 4-byte function selector of a canonical signature.
func Selector(sig string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel
}

// EncodeCall builds calldata the way a Compound-style timelock does: an empty
// signature means data is already complete calldata.
func EncodeCall(sig string, data []byte) []byte {
	if sig == "" {
		return data
	}
	sel := Selector(sig)
	out := make([]byte, 0, 4+len(data))
	out = append(out, sel[:]...)
	return append(out, data...)
}

// Key is the content-derived identifier of a staged action.
func Key(target common.Address, value *big.Int, sig string, data []byte) (common.Hash, error) {
	if value == nil {
		value = new(big.Int)
	}
	if data == nil {
		data = []byte{}
	}
	encoded, err := keyArgs.Pack(target, value, sig, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode action key: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}

// EncodeAddress ABI-encodes a single address argument.
func EncodeAddress(addr common.Address) []byte {
	encoded, err := addressArgs.Pack(addr)
	if err != nil {
		// address packing cannot fail
		panic(err)
	}
	return encoded
}

// PackMethod builds full calldata (selector + args) for a method of the ABI.
func PackMethod(contractABI abi.ABI, name string, args ...interface{}) ([]byte, error) {
	data, err := contractABI.Pack(name, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", name, err)
	}
	return data, nil
}

// UnpackMethod resolves the selector against the ABI and decodes its inputs.
func UnpackMethod(contractABI abi.ABI, selector [4]byte, args []byte) (*abi.Method, []interface{}, error) {
	method, err := contractABI.MethodById(selector[:])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: 0x%x", ErrUnknownMethod, selector)
	}
	values, err := method.Inputs.Unpack(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unpack %s: %w", method.Name, err)
	}
	return method, values, nil
}

// BigUint turns a uint64 into *big.Int for uint256 ABI slots.
func BigUint(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// Uint64 narrows a decoded uint256 argument. ok is false when the value does
// not fit, so callers revert instead of acting on a wrapped value.
func Uint64(v interface{}) (uint64, bool) {
	n, ok := v.(*big.Int)
	if !ok || n == nil || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// LookupEvent 按 topic0 查找日志对应的事件定义。ERC721 与 OGRE20 的
// Transfer/Approval 签名相同，tokenId 为 indexed，因此 4 个 topic 的属于 ERC721。
func LookupEvent(log *types.Log) (abi.Event, bool) {
	if len(log.Topics) == 0 {
		return abi.Event{}, false
	}
	id := log.Topics[0]
	sources := []abi.ABI{Governance, ERC20}
	if len(log.Topics) == 4 {
		sources = []abi.ABI{Governance, ERC721}
	}
	for _, source := range sources {
		for _, e := range source.Events {
			if e.ID == id {
				return e, true
			}
		}
	}
	return abi.Event{}, false
}

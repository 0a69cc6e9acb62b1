package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ValueKind tags the variant held by a Value
type ValueKind int

const (
	KindRaw ValueKind = iota
	KindUint
	KindInt
	KindAddress
	KindBool
	KindString
	KindBytes
	KindList
	KindTuple
)

func (k ValueKind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	default:
		return "raw"
	}
}

// Value is a decoded contract return value. Only the field matching Kind is set.
type Value struct {
	Kind    ValueKind
	Int     *big.Int
	Address common.Address
	Bool    bool
	String  string
	Bytes   []byte
	Items   []Value
	Names   []string
	Raw     interface{}
}

func UintValue(v *big.Int) Value { return Value{Kind: KindUint, Int: v} }

func IntValue(v *big.Int) Value { return Value{Kind: KindInt, Int: v} }

func AddressValue(v common.Address) Value { return Value{Kind: KindAddress, Address: v} }

func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

func StringValue(v string) Value { return Value{Kind: KindString, String: v} }

func BytesValue(v []byte) Value { return Value{Kind: KindBytes, Bytes: v} }

func ListValue(items []Value) Value { return Value{Kind: KindList, Items: items} }

func TupleValue(names []string, items []Value) Value {
	return Value{Kind: KindTuple, Names: names, Items: items}
}

func RawValue(v interface{}) Value { return Value{Kind: KindRaw, Raw: v} }

// Interface converts the value to a JSON-ready representation. Integers become
// exact decimal strings, addresses are checksummed and bytes are 0x-hex.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindUint, KindInt:
		if v.Int == nil {
			return "0"
		}
		return v.Int.String()
	case KindAddress:
		return v.Address.Hex()
	case KindBool:
		return v.Bool
	case KindString:
		return v.String
	case KindBytes:
		return hexutil.Encode(v.Bytes)
	case KindList, KindTuple:
		items := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			items[i] = item.Interface()
		}
		return items
	default:
		return v.Raw
	}
}

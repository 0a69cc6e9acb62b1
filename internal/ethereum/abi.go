package ethereum

import (
	"bytes"
	"encoding/json"
	"math/big"
	"reflect"
	"strings"

	"github.com/cyphera/eth-gas-gateway/internal/helpers"
	"github.com/cyphera/eth-gas-gateway/internal/types/business"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ParseABI parses a JSON ABI document
func ParseABI(raw json.RawMessage) (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// LookupMethod finds a method by its declared name, or by its canonical
// signature when name contains a parameter list. Overloads resolve to the
// first declaration.
func LookupMethod(parsed *abi.ABI, name string) (*abi.Method, bool) {
	if parsed == nil || name == "" {
		return nil, false
	}

	if strings.Contains(name, "(") {
		sig := strings.ReplaceAll(name, " ", "")
		for _, m := range parsed.Methods {
			if m.Sig == sig {
				method := m
				return &method, true
			}
		}
		return nil, false
	}

	if m, ok := parsed.Methods[name]; ok && m.RawName == name {
		return &m, true
	}
	return nil, false
}

// IsReadOnly reports whether the method is declared view, pure or constant
func IsReadOnly(m *abi.Method) bool {
	return m != nil && m.IsConstant()
}

// ConvertArgs turns untyped JSON arguments into the Go values the ABI packer
// expects for each input.
func ConvertArgs(inputs abi.Arguments, raw []json.RawMessage) ([]interface{}, error) {
	if len(raw) != len(inputs) {
		return nil, errors.Errorf("argument count mismatch: expected %d, got %d", len(inputs), len(raw))
	}

	out := make([]interface{}, len(inputs))
	for i, input := range inputs {
		v, err := convertValue(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = input.Type.String()
			}
			return nil, errors.Wrapf(err, "invalid argument %d (%s)", i, name)
		}
		out[i] = v.Interface()
	}
	return out, nil
}

func convertValue(t abi.Type, raw json.RawMessage) (reflect.Value, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, err := parseInteger(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return integerValue(t, n)

	case abi.BoolTy:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			s, serr := jsonString(raw)
			if serr != nil || (s != "true" && s != "false") {
				return reflect.Value{}, errors.Errorf("expected bool, got %s", raw)
			}
			b = s == "true"
		}
		return reflect.ValueOf(b), nil

	case abi.StringTy:
		s, err := jsonString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s), nil

	case abi.AddressTy:
		s, err := jsonString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		addr, ok := helpers.ParseAddress(s)
		if !ok {
			return reflect.Value{}, errors.Errorf("invalid address %q", s)
		}
		return reflect.ValueOf(addr), nil

	case abi.BytesTy:
		b, err := hexBytes(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b), nil

	case abi.FixedBytesTy, abi.FunctionTy:
		b, err := hexBytes(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		arr := reflect.New(t.GetType()).Elem()
		if len(b) != arr.Len() {
			return reflect.Value{}, errors.Errorf("expected %d bytes, got %d", arr.Len(), len(b))
		}
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr, nil

	case abi.SliceTy, abi.ArrayTy:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return reflect.Value{}, errors.Errorf("expected array, got %s", raw)
		}
		var out reflect.Value
		if t.T == abi.ArrayTy {
			if len(items) != t.Size {
				return reflect.Value{}, errors.Errorf("expected %d elements, got %d", t.Size, len(items))
			}
			out = reflect.New(t.GetType()).Elem()
		} else {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		}
		for i, item := range items {
			v, err := convertValue(*t.Elem, item)
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "element %d", i)
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case abi.TupleTy:
		items, err := tupleItems(t, raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t.GetType()).Elem()
		for i, elem := range t.TupleElems {
			v, err := convertValue(*elem, items[i])
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "component %s", t.TupleRawNames[i])
			}
			out.Field(i).Set(v)
		}
		return out, nil

	default:
		return reflect.Value{}, errors.Errorf("unsupported ABI type %s", t.String())
	}
}

// tupleItems accepts a positional array or an object keyed by component name
func tupleItems(t abi.Type, raw json.RawMessage) ([]json.RawMessage, error) {
	var positional []json.RawMessage
	if err := json.Unmarshal(raw, &positional); err == nil {
		if len(positional) != len(t.TupleElems) {
			return nil, errors.Errorf("expected %d tuple components, got %d", len(t.TupleElems), len(positional))
		}
		return positional, nil
	}

	var named map[string]json.RawMessage
	if err := json.Unmarshal(raw, &named); err != nil {
		return nil, errors.Errorf("expected tuple, got %s", raw)
	}
	items := make([]json.RawMessage, len(t.TupleElems))
	for i, name := range t.TupleRawNames {
		v, ok := named[name]
		if !ok {
			return nil, errors.Errorf("missing tuple component %s", name)
		}
		items[i] = v
	}
	return items, nil
}

// parseInteger reads a JSON number or a decimal or 0x-hex string
func parseInteger(raw json.RawMessage) (*big.Int, error) {
	text := strings.TrimSpace(string(raw))
	s, err := jsonString(raw)
	quoted := err == nil
	if quoted {
		text = strings.TrimSpace(s)
	}
	if text == "" {
		return nil, errors.New("expected integer, got empty value")
	}

	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")

	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		_, ok = n.SetString(digits[2:], 16)
	} else {
		_, ok = n.SetString(digits, 10)
		if !ok {
			// JSON numbers such as 1.0 are integral; quoted decimals are not
			ok = parseIntegralFloat(digits, !quoted, n)
		}
	}
	if !ok {
		return nil, errors.Errorf("expected integer, got %s", raw)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

// parseIntegralFloat accepts integral values written in exponent notation, such
// as 1e18, and with allowFraction set, decimals with a zero fraction such as 1.0
func parseIntegralFloat(s string, allowFraction bool, out *big.Int) bool {
	if !strings.ContainsAny(s, "eE") && !(allowFraction && strings.Contains(s, ".")) {
		return false
	}
	f, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return false
	}
	f.Int(out)
	return true
}

var bigOne = big.NewInt(1)

func integerValue(t abi.Type, n *big.Int) (reflect.Value, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return reflect.Value{}, errors.Errorf("value %s out of range for %s", n, t.String())
		}
	} else {
		magnitude := n
		if n.Sign() < 0 {
			magnitude = new(big.Int).Sub(new(big.Int).Neg(n), bigOne)
		}
		if magnitude.BitLen() > t.Size-1 {
			return reflect.Value{}, errors.Errorf("value %s out of range for %s", n, t.String())
		}
	}

	goType := t.GetType()
	switch goType.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(n.Int64()).Convert(goType), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(n.Uint64()).Convert(goType), nil
	default:
		return reflect.ValueOf(n), nil
	}
}

func jsonString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.Errorf("expected string, got %s", raw)
	}
	return s, nil
}

func hexBytes(raw json.RawMessage) ([]byte, error) {
	s, err := jsonString(raw)
	if err != nil {
		return nil, err
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex bytes %q", s)
	}
	return b, nil
}

// ToValues converts unpacked outputs into tagged values
func ToValues(outputs abi.Arguments, decoded []interface{}) []business.Value {
	values := make([]business.Value, len(decoded))
	for i, v := range decoded {
		if i < len(outputs) {
			values[i] = ToValue(outputs[i].Type, v)
		} else {
			values[i] = business.RawValue(v)
		}
	}
	return values
}

// ToValue converts one decoded output according to its ABI type
func ToValue(t abi.Type, v interface{}) business.Value {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := toBig(v)
		if !ok {
			return business.RawValue(v)
		}
		if t.T == abi.UintTy {
			return business.UintValue(n)
		}
		return business.IntValue(n)

	case abi.BoolTy:
		if b, ok := v.(bool); ok {
			return business.BoolValue(b)
		}

	case abi.StringTy:
		if s, ok := v.(string); ok {
			return business.StringValue(s)
		}

	case abi.AddressTy:
		if a, ok := v.(common.Address); ok {
			return business.AddressValue(a)
		}

	case abi.BytesTy:
		if b, ok := v.([]byte); ok {
			return business.BytesValue(b)
		}

	case abi.FixedBytesTy, abi.FunctionTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Array {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return business.BytesValue(b)
		}

	case abi.SliceTy, abi.ArrayTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			items := make([]business.Value, rv.Len())
			for i := range items {
				items[i] = ToValue(*t.Elem, rv.Index(i).Interface())
			}
			return business.ListValue(items)
		}

	case abi.TupleTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct && rv.NumField() == len(t.TupleElems) {
			items := make([]business.Value, len(t.TupleElems))
			for i, elem := range t.TupleElems {
				items[i] = ToValue(*elem, rv.Field(i).Interface())
			}
			return business.TupleValue(t.TupleRawNames, items)
		}
	}

	return business.RawValue(v)
}

func toBig(v interface{}) (*big.Int, bool) {
	if n, ok := v.(*big.Int); ok {
		return n, n != nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

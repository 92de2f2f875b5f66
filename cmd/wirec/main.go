package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/wirecodec/wire"
)

var typeNames = []string{
	"u8", "u16", "u32", "u64", "u128",
	"i8", "i16", "i32", "i64", "i128",
	"f32", "f64",
	"bool", "char", "string", "unit", "bytes",
}

func main() {
	var (
		typeName  = flag.String("type", "", "Value type: "+strings.Join(typeNames, ", "))
		encodeVal = flag.String("encode", "", "Literal value to encode (prints hex)")
		decodeHex = flag.String("decode", "", "Hex payload to decode (prints the value)")
		list      = flag.Bool("list", false, "List supported types and exit")
	)
	flag.Parse()

	if *list {
		for _, n := range typeNames {
			fmt.Println(n)
		}
		return
	}

	var encSet, decSet bool
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encode":
			encSet = true
		case "decode":
			decSet = true
		}
	})
	if *typeName == "" || encSet == decSet {
		usage()
	}

	var out string
	var err error
	if decSet {
		out, err = decode(*typeName, *decodeHex)
	} else {
		out, err = encode(*typeName, *encodeVal)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: wirec -type <name> -encode <literal>")
	fmt.Fprintln(os.Stderr, "       wirec -type <name> -decode <hex>")
	fmt.Fprintln(os.Stderr, "       wirec -list")
	os.Exit(1)
}

func encode(typeName, literal string) (string, error) {
	payload, err := encodeLiteral(typeName, literal)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(payload), nil
}

func encodeLiteral(typeName, literal string) ([]byte, error) {
	switch typeName {
	case "u8", "u16", "u32", "u64":
		bits := map[string]int{"u8": 8, "u16": 16, "u32": 32, "u64": 64}[typeName]
		v, err := strconv.ParseUint(literal, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", typeName, err)
		}
		switch typeName {
		case "u8":
			return wire.EncodeUint8(uint8(v)), nil
		case "u16":
			return wire.EncodeUint16(uint16(v)), nil
		case "u32":
			return wire.EncodeUint32(uint32(v)), nil
		default:
			return wire.EncodeUint64(v), nil
		}
	case "i8", "i16", "i32", "i64":
		bits := map[string]int{"i8": 8, "i16": 16, "i32": 32, "i64": 64}[typeName]
		v, err := strconv.ParseInt(literal, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", typeName, err)
		}
		switch typeName {
		case "i8":
			return wire.EncodeInt8(int8(v)), nil
		case "i16":
			return wire.EncodeInt16(int16(v)), nil
		case "i32":
			return wire.EncodeInt32(int32(v)), nil
		default:
			return wire.EncodeInt64(v), nil
		}
	case "u128":
		v, err := parseUint128(literal)
		if err != nil {
			return nil, err
		}
		return wire.EncodeUint128(v), nil
	case "i128":
		v, err := parseInt128(literal)
		if err != nil {
			return nil, err
		}
		return wire.EncodeInt128(v), nil
	case "f32":
		v, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return nil, fmt.Errorf("parse f32: %w", err)
		}
		return wire.EncodeFloat32(float32(v)), nil
	case "f64":
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("parse f64: %w", err)
		}
		return wire.EncodeFloat64(v), nil
	case "bool":
		v, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("parse bool: %w", err)
		}
		return wire.EncodeBool(v), nil
	case "char":
		r, size := utf8.DecodeRuneInString(literal)
		if size == 0 || size != len(literal) || r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("char literal must be exactly one rune, got %q", literal)
		}
		return wire.EncodeRune(r), nil
	case "string":
		return wire.EncodeString(literal), nil
	case "unit":
		return wire.EncodeUnit(wire.Unit{}), nil
	case "bytes":
		b, err := hex.DecodeString(literal)
		if err != nil {
			return nil, fmt.Errorf("parse bytes: %w", err)
		}
		return wire.EncodeBytes(b), nil
	default:
		return nil, fmt.Errorf("unknown type %q (see -list)", typeName)
	}
}

func decode(typeName, payloadHex string) (string, error) {
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return "", fmt.Errorf("parse hex payload: %w", err)
	}
	switch typeName {
	case "u8":
		v, err := wire.DecodeUint8(payload)
		return fmt.Sprint(v), err
	case "u16":
		v, err := wire.DecodeUint16(payload)
		return fmt.Sprint(v), err
	case "u32":
		v, err := wire.DecodeUint32(payload)
		return fmt.Sprint(v), err
	case "u64":
		v, err := wire.DecodeUint64(payload)
		return fmt.Sprint(v), err
	case "u128":
		v, err := wire.DecodeUint128(payload)
		return v.String(), err
	case "i8":
		v, err := wire.DecodeInt8(payload)
		return fmt.Sprint(v), err
	case "i16":
		v, err := wire.DecodeInt16(payload)
		return fmt.Sprint(v), err
	case "i32":
		v, err := wire.DecodeInt32(payload)
		return fmt.Sprint(v), err
	case "i64":
		v, err := wire.DecodeInt64(payload)
		return fmt.Sprint(v), err
	case "i128":
		v, err := wire.DecodeInt128(payload)
		return v.String(), err
	case "f32":
		v, err := wire.DecodeFloat32(payload)
		return fmt.Sprint(v), err
	case "f64":
		v, err := wire.DecodeFloat64(payload)
		return fmt.Sprint(v), err
	case "bool":
		v, err := wire.DecodeBool(payload)
		return fmt.Sprint(v), err
	case "char":
		v, err := wire.DecodeRune(payload)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", v), nil
	case "string":
		v, err := wire.DecodeString(payload)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", v), nil
	case "unit":
		_, err := wire.DecodeUnit(payload)
		return "()", err
	case "bytes":
		v, err := wire.DecodeBytes(payload)
		return hex.EncodeToString(v), err
	default:
		return "", fmt.Errorf("unknown type %q (see -list)", typeName)
	}
}

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func parseUint128(literal string) (wire.Uint128, error) {
	v, ok := new(big.Int).SetString(literal, 0)
	if !ok {
		return wire.Uint128{}, fmt.Errorf("parse u128: invalid literal %q", literal)
	}
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return wire.Uint128{}, fmt.Errorf("parse u128: %s out of range", literal)
	}
	buf := v.FillBytes(make([]byte, 16))
	u, err := wire.DecodeUint128(buf)
	if err != nil {
		return wire.Uint128{}, err
	}
	return u, nil
}

func parseInt128(literal string) (wire.Int128, error) {
	v, ok := new(big.Int).SetString(literal, 0)
	if !ok {
		return wire.Int128{}, fmt.Errorf("parse i128: invalid literal %q", literal)
	}
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return wire.Int128{}, fmt.Errorf("parse i128: %s out of range", literal)
	}
	// Two's complement: negative values are offset by 2^128.
	if v.Sign() < 0 {
		v = new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	buf := v.FillBytes(make([]byte, 16))
	i, err := wire.DecodeInt128(buf)
	if err != nil {
		return wire.Int128{}, err
	}
	return i, nil
}

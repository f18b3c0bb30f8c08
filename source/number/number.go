package number

// The numeric side of the calculator: turning the text of a term into a
// number, and a number back into text. The evaluator itself never does
// arithmetic; it just carries these values around.

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds the runtime-settable evaluation settings. One of these is made
// at startup and shared by reference; the settings operators ('input_radix',
// 'comma', and friends) mutate it.
type Config struct {
	InputRadix      int
	OutputRadix     int
	Comma           bool
	IntegerGrouping int
	DecimalGrouping int
	LeadingZero     bool
	Precision       int
}

const (
	defaultInputRadix      = 10
	defaultOutputRadix     = 10
	defaultIntegerGrouping = 0
	defaultDecimalGrouping = 0
	defaultPrecision       = 24
)

func NewConfig() *Config {
	cfg := &Config{
		InputRadix:      defaultInputRadix,
		OutputRadix:     defaultOutputRadix,
		IntegerGrouping: defaultIntegerGrouping,
		DecimalGrouping: defaultDecimalGrouping,
		Precision:       defaultPrecision,
	}
	cfg.SetPrecision(defaultPrecision)
	return cfg
}

// SetPrecision controls how many decimal places division carries. A negative
// argument restores the default.
func (cfg *Config) SetPrecision(n int) int {
	if n < 0 {
		n = defaultPrecision
	}
	cfg.Precision = n
	if decimal.DivisionPrecision < n {
		decimal.DivisionPrecision = n
	}
	return cfg.Precision
}

func (cfg *Config) SetInputRadix(n int) int {
	if n <= 0 {
		n = defaultInputRadix
	}
	cfg.InputRadix = n
	return cfg.InputRadix
}

func (cfg *Config) SetOutputRadix(n int) int {
	if n <= 0 {
		n = defaultOutputRadix
	}
	cfg.OutputRadix = n
	return cfg.OutputRadix
}

// Parse turns the text of a term into a number under the given input radix.
//
// A decimal point always means radix-10 unless the radix says otherwise; an
// integer may also be written as '0x'-prefixed hex, binary with a trailing
// 'b', or octal with a leading '0'. A leading backslash suppresses those
// special forms, and a trailing comma is ignored since it's easy to want to
// use one in a list.
func Parse(term string, radix int) (decimal.Decimal, error) {
	if term == "" {
		return decimal.Zero, errors.New("empty term")
	}
	if term == "0" {
		return decimal.Zero, nil
	}

	if term[len(term)-1] == ',' {
		term = term[:len(term)-1]
		if term == "" {
			return decimal.Zero, errors.New("empty term")
		}
	}

	ignoreSpecial := false
	if term[0] == '\\' {
		term = term[1:]
		ignoreSpecial = true
		if term == "" {
			return decimal.Zero, errors.New("empty term")
		}
	}

	negative := false
	body := term
	if body[0] == '-' || body[0] == '+' {
		negative = body[0] == '-'
		body = body[1:]
		if body == "" {
			return decimal.Zero, errors.New("sign without digits")
		}
	}

	integer := body
	mantissa := ""
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		integer = body[:dot]
		mantissa = body[dot+1:]
	}

	// Check for hex, then binary, then octal.
	if !ignoreSpecial && mantissa == "" && len(integer) > 1 && integer[0] == '0' {
		switch {
		case integer[1] == 'x' || integer[1] == 'X':
			return parseIntRadix(integer[2:], 16, negative)
		case integer[len(integer)-1] == 'b' || integer[len(integer)-1] == 'B':
			return parseIntRadix(integer[:len(integer)-1], 2, negative)
		default:
			return parseIntRadix(integer[1:], 8, negative)
		}
	}

	if radix == 10 {
		d, err := decimal.NewFromString(body)
		if err != nil {
			return decimal.Zero, err
		}
		if negative {
			d = d.Neg()
		}
		return d, nil
	}

	// Finally, we have a non-radix-10 number to parse.
	return convertToBase10(integer, mantissa, radix, negative)
}

func parseIntRadix(digits string, radix int, negative bool) (decimal.Decimal, error) {
	if digits == "" {
		return decimal.Zero, errors.New("number has no digits")
	}
	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return decimal.Zero, errors.New("invalid digits for base " + strconv.Itoa(radix))
	}
	d := decimal.NewFromBigInt(n, 0)
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// convertToBase10 interprets an integer part and a mantissa as numerals in
// the given radix.
func convertToBase10(integer, mantissa string, radix int, negative bool) (decimal.Decimal, error) {
	if radix < 2 || radix > 36 {
		return decimal.Zero, errors.New("input radix must be from 2 to 36")
	}
	result := decimal.Zero
	if integer != "" {
		n, ok := new(big.Int).SetString(integer, radix)
		if !ok {
			return decimal.Zero, errors.New("invalid digits for base " + strconv.Itoa(radix))
		}
		result = decimal.NewFromBigInt(n, 0)
	}
	if mantissa != "" {
		base := decimal.NewFromInt(int64(radix))
		place := base
		for i := 0; i < len(mantissa); i++ {
			digit := digitValue(mantissa[i])
			if digit < 0 || digit >= radix {
				return decimal.Zero, errors.New("invalid digits for base " + strconv.Itoa(radix))
			}
			result = result.Add(decimal.NewFromInt(int64(digit)).Div(place))
			place = place.Mul(base)
		}
	}
	if negative {
		result = result.Neg()
	}
	return result, nil
}

func digitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return -1
}

package number

// This takes a number and formats it according to a whole bunch of options:
// output radix, digit grouping, leading zeroes.

import (
	"strings"

	"github.com/shopspring/decimal"
)

func Format(d decimal.Decimal, cfg *Config) string {
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	var integer, mantissa string
	if cfg.OutputRadix != 10 && d.Equal(d.Truncate(0)) {
		integer = d.BigInt().Text(cfg.OutputRadix)
	} else {
		s := d.String()
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			integer, mantissa = s[:dot], s[dot+1:]
		} else {
			integer = s
		}
	}

	grouping := cfg.IntegerGrouping
	delimiter := " "
	if cfg.Comma {
		grouping = 3
		delimiter = ","
	}
	if grouping > 0 {
		if cfg.LeadingZero {
			for len(integer)%grouping != 0 {
				integer = "0" + integer
			}
		}
		integer = group(integer, grouping, delimiter, true)
	}
	if cfg.DecimalGrouping > 0 && mantissa != "" {
		mantissa = group(mantissa, cfg.DecimalGrouping, " ", false)
	}

	result := integer
	if mantissa != "" {
		result = result + "." + mantissa
	}
	if negative {
		result = "-" + result
	}
	return result
}

// group inserts the delimiter every n digits, counting from the decimal point
// outwards: right-to-left in the integer part, left-to-right in the mantissa.
func group(digits string, n int, delimiter string, fromRight bool) string {
	if len(digits) <= n {
		return digits
	}
	var chunks []string
	if fromRight {
		for len(digits) > n {
			chunks = append([]string{digits[len(digits)-n:]}, chunks...)
			digits = digits[:len(digits)-n]
		}
		chunks = append([]string{digits}, chunks...)
	} else {
		for len(digits) > n {
			chunks = append(chunks, digits[:n])
			digits = digits[n:]
		}
		chunks = append(chunks, digits)
	}
	return strings.Join(chunks, delimiter)
}

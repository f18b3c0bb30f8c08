package number

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		term  string
		radix int
		want  string
	}{
		{"42", 10, "42"},
		{"-5", 10, "-5"},
		{"+5", 10, "5"},
		{"2.5", 10, "2.5"},
		{"42,", 10, "42"},
		{"0x2a", 10, "42"},
		{"0X2A", 10, "42"},
		{"0101b", 10, "5"},
		{"052", 10, "42"},
		{"\\052", 10, "52"},
		{"ff", 16, "255"},
		{"10", 16, "16"},
		{"0.8", 16, "0.5"},
		{"z", 36, "35"},
		{"101", 2, "5"},
	}
	for _, test := range tests {
		d, e := Parse(test.term, test.radix)
		if e != nil {
			t.Fatalf(`Parse(%q, %v) failed: %v.`, test.term, test.radix, e)
		}
		if d.String() != test.want {
			t.Fatalf(`Parse(%q, %v) | Wanted : %s | Got : %s.`, test.term, test.radix, test.want, d.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []struct {
		term  string
		radix int
	}{
		{"", 10},
		{"-", 10},
		{"12q3", 10},
		{"0xzz", 10},
		{"fg", 16},
		{"2", 40},
	}
	for _, test := range bad {
		if _, e := Parse(test.term, test.radix); e == nil {
			t.Fatalf(`Parse(%q, %v) should have failed.`, test.term, test.radix)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		term string
		tune func(cfg *Config)
		want string
	}{
		{"1234567", func(cfg *Config) {}, "1234567"},
		{"1234567", func(cfg *Config) { cfg.Comma = true }, "1,234,567"},
		{"1234567", func(cfg *Config) { cfg.IntegerGrouping = 4 }, "123 4567"},
		{"1234567", func(cfg *Config) { cfg.IntegerGrouping = 4; cfg.LeadingZero = true }, "0123 4567"},
		{"-1234567", func(cfg *Config) { cfg.Comma = true }, "-1,234,567"},
		{"3.14159", func(cfg *Config) { cfg.DecimalGrouping = 2 }, "3.14 15 9"},
		{"255", func(cfg *Config) { cfg.SetOutputRadix(16) }, "ff"},
		{"5", func(cfg *Config) { cfg.SetOutputRadix(2) }, "101"},
		{"2.5", func(cfg *Config) { cfg.SetOutputRadix(16) }, "2.5"},
	}
	for _, test := range tests {
		cfg := NewConfig()
		test.tune(cfg)
		d, e := Parse(test.term, 10)
		if e != nil {
			t.Fatalf(`Parse(%q, 10) failed: %v.`, test.term, e)
		}
		if got := Format(d, cfg); got != test.want {
			t.Fatalf(`Format(%s) | Wanted : %s | Got : %s.`, test.term, test.want, got)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	cfg := NewConfig()
	for _, term := range []string{"0", "42", "-42", "2.5", "0.125"} {
		d, e := Parse(term, 10)
		if e != nil {
			t.Fatalf(`Parse(%q, 10) failed: %v.`, term, e)
		}
		if got := Format(d, cfg); got != term {
			t.Fatalf(`round trip of %s gave %s.`, term, got)
		}
	}
}

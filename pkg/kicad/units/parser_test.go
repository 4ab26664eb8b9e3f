package units

import (
	"testing"
)

func TestParseLength(t *testing.T) {
	p, err := NewParser(Millimetre)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "millimetres", input: "0.6mm", want: 600000},
		{name: "default unit", input: "0.3", want: 300000},
		{name: "space before unit", input: "0.2 mm", want: 200000},
		{name: "mils", input: "10mil", want: 254000},
		{name: "upper case", input: "10MIL", want: 254000},
		{name: "inches", input: "0.1in", want: 2540000},
		{name: "inch mark", input: "1\"", want: 25400000},
		{name: "nanometres", input: "600000nm", want: 600000},
		{name: "leading dot", input: ".5mm", want: 500000},
		{name: "negative", input: "-10nm", want: -10},
		{name: "exponent", input: "1e-3mm", want: 1000},
		{name: "empty", input: "", wantErr: true},
		{name: "unit only", input: "mm", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "trailing junk", input: "1mm 2mm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseLength(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLength(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLength(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLengthDefaultUnit(t *testing.T) {
	p, err := NewParser(Mil)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	got, err := p.ParseLength("10")
	if err != nil {
		t.Fatalf("ParseLength: %v", err)
	}
	if got != 254000 {
		t.Errorf("ParseLength(10) with mil default = %d, want 254000", got)
	}

	if _, err := NewParser(Unit("parsec")); err == nil {
		t.Errorf("NewParser with unknown unit should fail")
	}

	got, err = ParseLength("1.6")
	if err != nil || got != 1600000 {
		t.Errorf("package ParseLength(1.6) = %d, %v", got, err)
	}
}

func TestParsePoint(t *testing.T) {
	p, err := NewParser(Millimetre)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	tests := []struct {
		input   string
		wantX   int
		wantY   int
		wantErr bool
	}{
		{input: "10mm,5mm", wantX: 10000000, wantY: 5000000},
		{input: "1, -2", wantX: 1000000, wantY: -2000000},
		{input: "100mil; 0", wantX: 2540000, wantY: 0},
		{input: "1mm", wantErr: true},
		{input: "1mm,", wantErr: true},
	}

	for _, tt := range tests {
		x, y, err := p.ParsePoint(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePoint(%q) = %d,%d, want error", tt.input, x, y)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePoint(%q) error: %v", tt.input, err)
			continue
		}
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ParsePoint(%q) = %d,%d, want %d,%d", tt.input, x, y, tt.wantX, tt.wantY)
		}
	}
}

package dataset

import (
	"math"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	frame, err := New([]string{"a", "b"}, [][]any{{1.0, 2.0}, {3.0, 4.0}})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if frame.NumRows() != 2 || frame.NumCols() != 2 {
		t.Errorf("frame is %dx%d, want 2x2", frame.NumRows(), frame.NumCols())
	}

	if _, err := New([]string{"a", "b"}, [][]any{{1.0}}); err == nil {
		t.Error("New() accepted a row narrower than the column set")
	}
}

func TestFrame_Column(t *testing.T) {
	frame, err := New([]string{"open", "close"}, [][]any{{1.0, 2.0}, {3.0, 4.0}})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	values, ok := frame.Column("close")
	if !ok {
		t.Fatal("Column(close) not found")
	}
	if !reflect.DeepEqual(values, []any{2.0, 4.0}) {
		t.Errorf("Column(close) = %v, want [2 4]", values)
	}

	if _, ok := frame.Column("volume"); ok {
		t.Error("Column(volume) found, want missing")
	}
	if idx := frame.ColumnIndex("open"); idx != 0 {
		t.Errorf("ColumnIndex(open) = %d, want 0", idx)
	}
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"nan", math.NaN(), true},
		{"zero", 0.0, false},
		{"string", "x", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMissing(tt.v); got != tt.want {
				t.Errorf("IsMissing(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestStockMarket(t *testing.T) {
	dow := StockMarket("DOW")
	if len(dow) != 30 {
		t.Fatalf("StockMarket(DOW) has %d entries, want 30", len(dow))
	}
	if got := dow["Apple Inc"]; got != "AAPL" {
		t.Errorf("dow[Apple Inc] = %q, want AAPL", got)
	}

	// Callers get a copy, not the shared map
	dow["Apple Inc"] = "XXXX"
	if got := StockMarket("DOW")["Apple Inc"]; got != "AAPL" {
		t.Errorf("mutating the returned map leaked into the sample data: %q", got)
	}

	if got := StockMarket("NASDAQ"); got != nil {
		t.Errorf("StockMarket(NASDAQ) = %v, want nil", got)
	}
}

func TestDecodePayload(t *testing.T) {
	t.Run("frame", func(t *testing.T) {
		v, err := DecodePayload([]byte(`{"columns":["a"],"rows":[[1.5],[null]]}`))
		if err != nil {
			t.Fatalf("DecodePayload() returned unexpected error: %v", err)
		}
		frame, ok := v.(*Frame)
		if !ok {
			t.Fatalf("DecodePayload() = %T, want *Frame", v)
		}
		if !frame.IsNull(1, 0) {
			t.Error("IsNull(1, 0) = false, want true for a null cell")
		}
	})

	t.Run("generic object", func(t *testing.T) {
		v, err := DecodePayload([]byte(`{"sector":"Technology"}`))
		if err != nil {
			t.Fatalf("DecodePayload() returned unexpected error: %v", err)
		}
		m, ok := v.(map[string]any)
		if !ok || m["sector"] != "Technology" {
			t.Errorf("DecodePayload() = %v, want map with sector", v)
		}
	})

	t.Run("scalar", func(t *testing.T) {
		v, err := DecodePayload([]byte(`"US0378331005"`))
		if err != nil {
			t.Fatalf("DecodePayload() returned unexpected error: %v", err)
		}
		if v != "US0378331005" {
			t.Errorf("DecodePayload() = %v, want the string itself", v)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := DecodePayload([]byte(`{broken`)); err == nil {
			t.Error("DecodePayload() accepted invalid JSON")
		}
	})
}

package logparse

import (
	"math"
	"testing"
)

func TestParseStatusCode_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
		ok    bool
	}{
		{"float64", float64(200), 200, true},
		{"int", 404, 404, true},
		{"int64", int64(503), 503, true},
		{"lower bound", 100, 100, true},
		{"upper bound exclusive", 600, 0, false},
		{"below range", 99, 0, false},
		{"above range", 700, 0, false},
		{"negative", -1, 0, false},
		{"zero", 0, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatusCode(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseStatusCode(%v) = (%d, %v), want (%d, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseStatusCode_Strings(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"200", 200, true},
		{" 404 ", 404, true},
		{"200.0", 200, true},
		{"", 0, false},
		{"abc", 0, false},
		{"2000", 0, false},
		{"NaN", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseStatusCode(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseStatusCode(%q) = (%d, %v), want (%d, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseStatusCode_UnsupportedTypes(t *testing.T) {
	for _, v := range []interface{}{nil, true, []interface{}{200}, map[string]interface{}{}} {
		if _, ok := ParseStatusCode(v); ok {
			t.Errorf("ParseStatusCode(%#v) accepted unsupported type", v)
		}
	}
}

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http_request", "http_request"},
		{"HTTP_REQUEST", "http_request"},
		{" request ", "http_request"},
		{"http", "http_request"},
		{"access", "http_request"},
		{"db_query", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeKind(tt.input); got != tt.want {
			t.Errorf("NormalizeKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{101, "1xx"},
		{200, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		if got := StatusClass(tt.code); got != tt.want {
			t.Errorf("StatusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

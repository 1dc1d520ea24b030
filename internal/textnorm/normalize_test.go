package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAccents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "polish diacritics", input: "Województwo", want: "Wojewodztwo"},
		{name: "nominative months", input: "wrzesień październik", want: "wrzesien pazdziernik"},
		{name: "no accents", input: "okres", want: "okres"},
		{name: "empty", input: "", want: ""},
		{name: "l-stroke has no decomposition", input: "ogółem", want: "ogołem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripAccents(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "internal runs", input: "a  b\t\tc", want: "a b c"},
		{name: "leading and trailing", input: "  okres  ", want: "okres"},
		{name: "newlines", input: "a\nb\r\nc", want: "a b c"},
		{name: "already clean", input: "a b", want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.input))
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "wojewodztwo", Canonical("  WOJEWÓDZTWO "))
	assert.Equal(t, "kwartał", Canonical("Kwartał"))
}

func TestNormalizePolishDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "long form with r. suffix and trailing comma",
			input: "31 marca 2025 r.,",
			want:  "31.03.2025,",
		},
		{
			name:  "single digit day is padded",
			input: "1 stycznia 2024",
			want:  "01.01.2024",
		},
		{
			name:  "case insensitive month",
			input: "15 MARCA 2025",
			want:  "15.03.2025",
		},
		{
			name:  "unaccented september variant",
			input: "30 wrzesnia 2024 r.",
			want:  "30.09.2024",
		},
		{
			name:  "accented october",
			input: "31 października 2024",
			want:  "31.10.2024",
		},
		{
			name:  "multiple dates in one string",
			input: "od 1 stycznia 2025 do 31 marca 2025 r.",
			want:  "od 01.01.2025 do 31.03.2025",
		},
		{
			name:  "surrounding text untouched",
			input: "stan na 31 grudnia 2024 r. według rejestru",
			want:  "stan na 31.12.2024 według rejestru",
		},
		{
			name:  "no date",
			input: "brak danych",
			want:  "brak danych",
		},
		{
			name:  "already numeric",
			input: "31.03.2025",
			want:  "31.03.2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePolishDates(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizePolishDates(got), "must be idempotent")
		})
	}
}

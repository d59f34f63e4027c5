package form

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testClock = time.Date(2026, time.August, 25, 14, 5, 0, 0, time.UTC)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		want    Value
		wantErr bool
	}{
		{
			name: "words pass through",
			kind: KindWords,
			raw:  "hello there",
			want: Value{Kind: KindWords, Text: "hello there"},
		},
		{
			name: "choice passes through",
			kind: KindChoice,
			raw:  "Option B",
			want: Value{Kind: KindChoice, Text: "Option B"},
		},
		{
			name: "extra passes through",
			kind: KindExtra,
			raw:  "anything",
			want: Value{Kind: KindExtra, Text: "anything"},
		},
		{
			name: "checkboxes split and trim",
			kind: KindCheckboxes,
			raw:  "a, b ,  c",
			want: Value{Kind: KindCheckboxes, List: []string{"a", "b", "c"}},
		},
		{
			name: "single checkbox",
			kind: KindCheckboxes,
			raw:  "only one",
			want: Value{Kind: KindCheckboxes, List: []string{"only one"}},
		},
		{
			name:    "empty checkbox piece in the middle",
			kind:    KindCheckboxes,
			raw:     "a,,b",
			wantErr: true,
		},
		{
			name:    "trailing comma",
			kind:    KindCheckboxes,
			raw:     "a,",
			wantErr: true,
		},
		{
			name: "date in MM/DD/YYYY",
			kind: KindDate,
			raw:  "08/25/2026",
			want: Value{Kind: KindDate, Time: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "date literal today",
			kind: KindDate,
			raw:  "today",
			want: Value{Kind: KindDate, Time: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "date literal current ignores case",
			kind: KindDate,
			raw:  "CURRENT",
			want: Value{Kind: KindDate, Time: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "date without zero padding",
			kind:    KindDate,
			raw:     "8/25/2026",
			wantErr: true,
		},
		{
			name:    "date with wrong separator",
			kind:    KindDate,
			raw:     "08-25-2026",
			wantErr: true,
		},
		{
			name:    "date that does not exist",
			kind:    KindDate,
			raw:     "02/30/2026",
			wantErr: true,
		},
		{
			name: "time in HH:MM",
			kind: KindTime,
			raw:  "09:30",
			want: Value{Kind: KindTime, Time: time.Date(0, time.January, 1, 9, 30, 0, 0, time.UTC)},
		},
		{
			name: "time literal now",
			kind: KindTime,
			raw:  "now",
			want: Value{Kind: KindTime, Time: time.Date(0, time.January, 1, 14, 5, 0, 0, time.UTC)},
		},
		{
			name:    "time without zero padding",
			kind:    KindTime,
			raw:     "9:30",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			kind:    KindTime,
			raw:     "25:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			kind:    KindTime,
			raw:     "09:60",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeValue(tt.kind, tt.raw, testClock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeValue(%v, %q) error = %v, wantErr %v", tt.kind, tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeValue(%v, %q) mismatch (-want +got):\n%s", tt.kind, tt.raw, diff)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{
			name:  "words",
			value: Value{Kind: KindWords, Text: "hi"},
			want:  "hi",
		},
		{
			name:  "checkboxes rejoin",
			value: Value{Kind: KindCheckboxes, List: []string{"a", "b"}},
			want:  "a, b",
		},
		{
			name:  "date is zero padded",
			value: Value{Kind: KindDate, Time: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)},
			want:  "01/02/2026",
		},
		{
			name:  "time is zero padded",
			value: Value{Kind: KindTime, Time: time.Date(0, time.January, 1, 9, 5, 0, 0, time.UTC)},
			want:  "09:05",
		},
		{
			name:  "blank date",
			value: Value{Kind: KindDate},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		wantErr bool
	}{
		{name: "empty input always passes", kind: KindDate, raw: ""},
		{name: "whitespace input always passes", kind: KindTime, raw: "  "},
		{name: "good checkbox list", kind: KindCheckboxes, raw: "a, b"},
		{name: "bad checkbox list", kind: KindCheckboxes, raw: "a,,b", wantErr: true},
		{name: "bad date", kind: KindDate, raw: "tomorrow", wantErr: true},
		{name: "good literal", kind: KindDate, raw: "today"},
		{name: "bad time", kind: KindTime, raw: "late", wantErr: true},
		{name: "words accept anything", kind: KindWords, raw: "a;b=c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckValue(tt.kind, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckValue(%v, %q) error = %v, wantErr %v", tt.kind, tt.raw, err, tt.wantErr)
			}
		})
	}
}

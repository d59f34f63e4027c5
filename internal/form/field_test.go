package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    *Field
		wantErr bool
		errType error
	}{
		{
			name: "blank line is skipped",
			line: "",
		},
		{
			name: "whitespace only line is skipped",
			line: "   \t  ",
		},
		{
			name: "comment line is skipped",
			line: "# favorite color question",
		},
		{
			name: "indented comment line is skipped",
			line: "   # note",
		},
		{
			name: "minimal words field",
			line: "w-entry.1000=",
			want: &Field{Type: KindWords, Key: "entry.1000", Title: "entry.1000"},
		},
		{
			name: "full line with both markers",
			line: "*!m-entry.404;Favorite Fruit=Apple",
			want: &Field{
				Required: true,
				Prompted: true,
				Type:     KindChoice,
				Key:      "entry.404",
				Title:    "Favorite Fruit",
				Value:    "Apple",
			},
		},
		{
			name: "title defaults to key",
			line: "w-entry.2=hello",
			want: &Field{Type: KindWords, Key: "entry.2", Title: "entry.2", Value: "hello"},
		},
		{
			name: "empty title segment defaults to key",
			line: "w-entry.2;=hello",
			want: &Field{Type: KindWords, Key: "entry.2", Title: "entry.2", Value: "hello"},
		},
		{
			name: "whitespace between every token",
			line: "  *  !  w  -  entry.3  ;  The Title  =  The Value  ",
			want: &Field{
				Required: true,
				Prompted: true,
				Type:     KindWords,
				Key:      "entry.3",
				Title:    "The Title",
				Value:    "The Value",
			},
		},
		{
			name: "type token is case insensitive",
			line: "W-entry.1=x",
			want: &Field{Type: KindWords, Key: "entry.1", Title: "entry.1", Value: "x"},
		},
		{
			name: "multi word alias",
			line: "Multiple Choice-entry.9;Pick=B",
			want: &Field{Type: KindChoice, Key: "entry.9", Title: "Pick", Value: "B"},
		},
		{
			name: "canonical name resolves",
			line: "checkboxes-entry.5=a, b",
			want: &Field{Type: KindCheckboxes, Key: "entry.5", Title: "entry.5", Value: "a, b"},
		},
		{
			name: "extra field takes a bare key",
			line: "x-color=blue",
			want: &Field{Type: KindExtra, Key: "color", Title: "color", Value: "blue"},
		},
		{
			name: "value keeps later separators",
			line: "w-entry.7;T=a=b;c-d",
			want: &Field{Type: KindWords, Key: "entry.7", Title: "T", Value: "a=b;c-d"},
		},
		{
			name: "title may contain a dash",
			line: "w-entry.8;follow-up notes=v",
			want: &Field{Type: KindWords, Key: "entry.8", Title: "follow-up notes", Value: "v"},
		},
		{
			name:    "missing equals separator",
			line:    "w-entry.1;Title",
			wantErr: true,
			errType: ErrMalformedLine,
		},
		{
			name:    "missing dash separator",
			line:    "w entry.1=x",
			wantErr: true,
			errType: ErrMalformedLine,
		},
		{
			name:    "unknown type token",
			line:    "q-entry.1=x",
			wantErr: true,
			errType: ErrUnknownType,
		},
		{
			name:    "missing key",
			line:    "w-=x",
			wantErr: true,
			errType: ErrMalformedLine,
		},
		{
			name:    "missing key before title",
			line:    "w-;Title=x",
			wantErr: true,
			errType: ErrMalformedLine,
		},
		{
			name:    "bare key rejected outside extra",
			line:    "w-1000;Question=",
			wantErr: true,
			errType: ErrMalformedLine,
		},
		{
			name:    "markers in the wrong order",
			line:    "!*w-entry.1=x",
			wantErr: true,
			errType: ErrUnknownType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tokenize(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errType != nil && !errors.Is(err, tt.errType) {
					t.Errorf("Tokenize(%q) error = %v, want %v", tt.line, err, tt.errType)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestResolveKind(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"w", KindWords},
		{"word", KindWords},
		{"text", KindWords},
		{"words", KindWords},
		{"WORDS", KindWords},
		{"m", KindChoice},
		{"mc", KindChoice},
		{"multiple choice", KindChoice},
		{"Multiple Choice", KindChoice},
		{"choice", KindChoice},
		{"c", KindCheckboxes},
		{"checkbox", KindCheckboxes},
		{"checkboxes", KindCheckboxes},
		{"d", KindDate},
		{"date", KindDate},
		{"t", KindTime},
		{"time", KindTime},
		{"x", KindExtra},
		{"xd", KindExtra},
		{"extra data", KindExtra},
		{"extra", KindExtra},
		{"  w  ", KindWords},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ResolveKind(tt.token)
			if err != nil {
				t.Fatalf("ResolveKind(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ResolveKind(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveKindUnknown(t *testing.T) {
	for _, token := range []string{"", "z", "wordss", "multiplechoice"} {
		if _, err := ResolveKind(token); !errors.Is(err, ErrUnknownType) {
			t.Errorf("ResolveKind(%q) error = %v, want %v", token, err, ErrUnknownType)
		}
	}
}

func TestFieldString(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "aliases render canonically",
			line: "mc-entry.1;Q=A",
			want: "choice-entry.1;Q=A",
		},
		{
			name: "markers kept in order",
			line: "  * ! w - entry.2 ; Name = Bob ",
			want: "*!words-entry.2;Name=Bob",
		},
		{
			name: "default title is written out",
			line: "d-entry.3=today",
			want: "date-entry.3;entry.3=today",
		},
		{
			name: "empty value keeps trailing equals",
			line: "x-note=",
			want: "extra-note;note=",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Tokenize(tt.line)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.line, err)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

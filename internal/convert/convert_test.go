package convert

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"formfill-cli/internal/form"
)

func TestConverterFetch(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(formPage(testSubmitURL)))
	}))
	defer server.Close()

	converter := New(WithUserAgent("formfill-test"))
	scraped, err := converter.Fetch(context.Background(), server.URL+"/forms/d/e/test/viewform")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotAgent != "formfill-test" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "formfill-test")
	}
	if scraped.Title != "Party RSVP" {
		t.Errorf("Title = %q, want %q", scraped.Title, "Party RSVP")
	}
	if len(scraped.Questions) != 5 {
		t.Errorf("got %d questions, want 5", len(scraped.Questions))
	}
}

func TestConverterFetchNormalizesLink(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(formPage(testSubmitURL)))
	}))
	defer server.Close()

	// A formResponse link should be fetched as its viewform page.
	if _, err := New().Fetch(context.Background(), server.URL+"/forms/d/e/test/formResponse"); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.HasSuffix(gotPath, "/viewform") {
		t.Errorf("fetched path = %q, want a viewform page", gotPath)
	}
}

func TestConverterFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := New().Fetch(context.Background(), server.URL+"/forms/d/e/test/viewform"); err == nil {
		t.Fatal("Fetch() accepted a 404 page")
	}
}

func TestConverterFetchBadLink(t *testing.T) {
	if _, err := New().Fetch(context.Background(), "https://example.com/not-a-form"); err == nil {
		t.Fatal("Fetch() accepted a link that cannot name a form")
	}
}

func TestConverterConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(formPage(testSubmitURL)))
	}))
	defer server.Close()

	rendered, err := New().Convert(context.Background(), server.URL+"/forms/d/e/test/viewform")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !strings.HasPrefix(rendered, "# Party RSVP\n") {
		t.Errorf("Convert() output starts with %q, want the title comment", firstLine(rendered))
	}
	for _, line := range []string{
		"*!x-emailAddress;Email Address=",
		"*!w-entry.1000001;Your name=",
		"!m-entry.1000002;Favorite fruit=",
		"!c-entry.1000003;Toppings=",
		"*!d-entry.1000004;Arrival day=",
		"!t-entry.1000005;Arrival time=",
	} {
		if !strings.Contains(rendered, line+"\n") {
			t.Errorf("Convert() output is missing %q:\n%s", line, rendered)
		}
	}
	if errs := form.CheckDocument(rendered); len(errs) != 0 {
		t.Errorf("Convert() output does not parse: %v", errs)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

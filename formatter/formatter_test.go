package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

func sampleList() itinerary.List {
	return itinerary.List{
		Heading: "Itineraries",
		Width:   "36rem",
		Cards: []itinerary.Card{
			{Key: "walk-1_metro-2", Content: "{\n  \"legs\": [\n    {\n      \"id\": \"walk-1\"\n    }\n  ]\n}"},
			{Key: "bus-31", Content: "{\n  \"name\": \"Furuset <senter> & co\"\n}"},
		},
	}
}

func emptyList() itinerary.List {
	return itinerary.List{Heading: "Itineraries", Width: "36rem"}
}

func TestBuildHTML_Cards(t *testing.T) {
	rb := NewResponseBuilder()
	out, err := rb.BuildHTML(sampleList())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<h2>Itineraries</h2>") {
		t.Error("HTML should contain the heading")
	}
	if !strings.Contains(html, `style="width: 36rem; height: auto;"`) {
		t.Errorf("HTML should carry the section width:\n%s", html)
	}
	if n := strings.Count(html, `class="card"`); n != 2 {
		t.Errorf("expected 2 cards, got %d", n)
	}
	if !strings.Contains(html, `data-key="walk-1_metro-2"`) || !strings.Contains(html, `data-key="bus-31"`) {
		t.Errorf("HTML should key cards by leg ids:\n%s", html)
	}
	if strings.Contains(html, "<senter>") {
		t.Error("card content must be escaped")
	}
	if !strings.Contains(html, "Furuset &lt;senter&gt; &amp; co") {
		t.Errorf("escaped content missing:\n%s", html)
	}
}

func TestBuildHTML_Absent(t *testing.T) {
	out, err := NewResponseBuilder().BuildHTML(emptyList())
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h2>Itineraries</h2>") {
		t.Error("HTML should contain the heading")
	}
	if strings.Contains(html, `class="card"`) {
		t.Error("absent result should render no cards")
	}
}

func TestBuildJSON(t *testing.T) {
	rb := NewResponseBuilder()

	var parsed listPayload
	if err := json.Unmarshal(rb.BuildJSON(sampleList()), &parsed); err != nil {
		t.Fatalf("generated JSON is not valid: %v", err)
	}
	if parsed.Heading != "Itineraries" || len(parsed.Cards) != 2 {
		t.Fatalf("unexpected payload: %+v", parsed)
	}
	if parsed.Cards[1].Content != sampleList().Cards[1].Content {
		t.Errorf("content changed: %q", parsed.Cards[1].Content)
	}

	empty := string(rb.BuildJSON(emptyList()))
	if !strings.Contains(empty, `"cards":[]`) {
		t.Errorf("empty list should carry an empty cards array: %s", empty)
	}
}

func TestBuildText(t *testing.T) {
	rb := NewResponseBuilder()
	out := rb.BuildText(sampleList())

	if !strings.Contains(out, "Itineraries") {
		t.Error("text should contain the heading")
	}
	if n := strings.Count(out, "╭"); n != 2 {
		t.Errorf("expected 2 boxed cards, got %d\n%s", n, out)
	}
	if !strings.Contains(out, "key: walk-1_metro-2") {
		t.Errorf("card key missing:\n%s", out)
	}
	if !strings.Contains(out, `"name": "Furuset <senter> & co"`) {
		t.Errorf("card content missing:\n%s", out)
	}

	if n := strings.Count(rb.BuildText(emptyList()), "╭"); n != 0 {
		t.Errorf("absent result should render no cards, got %d", n)
	}
}

func TestBuildPDF(t *testing.T) {
	rb := &ResponseBuilder{}
	out, err := rb.BuildPDF(sampleList())
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output should be a PDF document")
	}
	if n := bytes.Count(out, []byte("(key: ")); n != 2 {
		t.Errorf("expected 2 card blocks, got %d", n)
	}
	if !bytes.Contains(out, []byte("(Itineraries)")) {
		t.Error("PDF should contain the heading")
	}

	out, err = rb.BuildPDF(emptyList())
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if bytes.Contains(out, []byte("(key: ")) {
		t.Error("absent result should render no cards")
	}
}

func TestBuildPDF_Compressed(t *testing.T) {
	out, err := NewResponseBuilder().BuildPDF(sampleList())
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatal("output should be a PDF document")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"html", FormatHTML},
		{"HTM", FormatHTML},
		{" json ", FormatJSON},
		{"txt", FormatText},
		{"text", FormatText},
		{"pdf", FormatPDF},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBuild_Dispatch(t *testing.T) {
	rb := NewResponseBuilder()
	for _, f := range []Format{FormatHTML, FormatJSON, FormatText, FormatPDF} {
		out, err := rb.Build(sampleList(), f)
		if err != nil {
			t.Errorf("Build(%s): %v", f, err)
		}
		if len(out) == 0 {
			t.Errorf("Build(%s) returned empty output", f)
		}
		if ContentType(f) == "application/octet-stream" {
			t.Errorf("no content type for %s", f)
		}
	}

	if _, err := rb.Build(sampleList(), Format("xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBuildPDF_MissingUTF8Font(t *testing.T) {
	rb := NewResponseBuilder().WithPDFFont("/nonexistent/DejaVuSansMono.ttf")
	if _, err := rb.BuildPDF(sampleList()); err == nil {
		t.Fatal("a missing UTF-8 font should fail the PDF render")
	}

	if out, err := rb.WithPDFFont("").BuildPDF(sampleList()); err != nil || !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("clearing the font should fall back to core fonts: %v", err)
	}
}

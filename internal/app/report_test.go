package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chriscorrea/wordfreq/internal/counter"
	"github.com/chriscorrea/wordfreq/internal/topk"
)

func sampleReport() *Report {
	return &Report{
		Passes: []Pass{
			{
				Strategy:      counter.Ordered,
				Label:         "Ordered map",
				TopWords:      []topk.WordCount{{Word: "tennessee", Count: 12}, {Word: "history", Count: 9}},
				DistinctWords: 40,
				TotalWords:    120,
				Elapsed:       1234567 * time.Nanosecond,
			},
			{
				Strategy:      counter.Unordered,
				Label:         "Hash map",
				TopWords:      []topk.WordCount{{Word: "tennessee", Count: 12}, {Word: "history", Count: 9}},
				DistinctWords: 40,
				TotalWords:    120,
				Elapsed:       2 * time.Millisecond,
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	expected := `Word occurrence and count:
tennessee: 12
history: 9
Ordered map execution time: 1.234567 milliseconds or 1234567 nanoseconds
*===============================*
Word occurrence and count:
tennessee: 12
history: 9
Hash map execution time: 2 milliseconds or 2000000 nanoseconds
`

	result, err := Render(sampleReport(), Text)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("Render(Text) =\n%s\nwant\n%s", result, expected)
	}
}

func TestRenderTextSummaryAndEmptyPass(t *testing.T) {
	report := &Report{
		Summary: []Measure{{Unit: "words", Count: 3}, {Unit: "characters", Count: 17}},
		Passes:  []Pass{{Label: "Hash map", TopWords: []topk.WordCount{}, Elapsed: 500 * time.Nanosecond}},
	}

	expected := `Input: 3 words, 17 characters
Word occurrence and count:
Hash map execution time: 0.0005 milliseconds or 500 nanoseconds
`

	result, err := Render(report, Text)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("Render(Text) =\n%s\nwant\n%s", result, expected)
	}
}

func TestRenderJSON(t *testing.T) {
	result, err := Render(sampleReport(), JSON)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	var decoded struct {
		Summary []Measure `json:"summary"`
		Passes  []struct {
			Strategy           string           `json:"strategy"`
			Label              string           `json:"label"`
			TopWords           []topk.WordCount `json:"topWords"`
			ElapsedNanoseconds int64            `json:"elapsedNanoseconds"`
		} `json:"passes"`
	}
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Render(JSON) produced invalid JSON: %v\n%s", err, result)
	}

	if decoded.Summary != nil {
		t.Errorf("summary = %v, want omitted", decoded.Summary)
	}
	if len(decoded.Passes) != 2 {
		t.Fatalf("decoded %d passes, want 2", len(decoded.Passes))
	}
	if decoded.Passes[0].Strategy != "ordered" || decoded.Passes[1].Strategy != "unordered" {
		t.Errorf("strategies = %q, %q, want ordered, unordered", decoded.Passes[0].Strategy, decoded.Passes[1].Strategy)
	}
	if decoded.Passes[0].ElapsedNanoseconds != 1234567 {
		t.Errorf("elapsedNanoseconds = %d, want 1234567", decoded.Passes[0].ElapsedNanoseconds)
	}
	if decoded.Passes[1].TopWords[0] != (topk.WordCount{Word: "tennessee", Count: 12}) {
		t.Errorf("topWords[0] = %v, want tennessee: 12", decoded.Passes[1].TopWords[0])
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(sampleReport(), OutputFormat(9)); err == nil {
		t.Error("Render() expected error for unknown format")
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{0, "0"},
		{1, "0.000001"},
		{1500 * time.Microsecond, "1.5"},
		{42 * time.Millisecond, "42"},
		{time.Second + 1, "1000.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := formatMillis(tt.elapsed); result != tt.expected {
				t.Errorf("formatMillis(%d) = %q, want %q", int64(tt.elapsed), result, tt.expected)
			}
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{Text, "Text"},
		{JSON, "JSON"},
		{OutputFormat(7), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.format.String(); result != tt.expected {
				t.Errorf("OutputFormat(%d).String() = %q, want %q", int(tt.format), result, tt.expected)
			}
		})
	}
}

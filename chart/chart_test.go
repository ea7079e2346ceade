package chart

import (
	"bytes"
	"testing"

	"moodlog/insight"
)

func TestRender(t *testing.T) {
	series := []insight.DailyAverage{
		{Date: "2026-08-10", MoodScore: 7},
		{Date: "2026-08-11", MoodScore: 5},
		{Date: "2026-08-12", MoodScore: 8.5},
	}

	var buf bytes.Buffer
	if err := Render(&buf, series, 7); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Output is not a PNG")
	}
}

func TestRenderSinglePoint(t *testing.T) {
	series := []insight.DailyAverage{{Date: "2026-08-10", MoodScore: 9}}

	var buf bytes.Buffer
	if err := Render(&buf, series, 30); err != nil {
		t.Fatalf("Render returned error for single point: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Output is not a PNG")
	}
}

func TestRenderBadDate(t *testing.T) {
	series := []insight.DailyAverage{{Date: "not-a-date", MoodScore: 5}}

	var buf bytes.Buffer
	if err := Render(&buf, series, 7); err == nil {
		t.Error("Expected error for malformed date")
	}
}

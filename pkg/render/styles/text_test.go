package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestTruncateLabel(t *testing.T) {
	short := "cpu: 42"
	if got := TruncateLabel(short); got != short {
		t.Errorf("TruncateLabel(%q) = %q, want unchanged", short, got)
	}

	long := strings.Repeat("x", 40)
	got := TruncateLabel(long)
	if len(got) != maxLabelChars {
		t.Errorf("TruncateLabel long len = %d, want %d", len(got), maxLabelChars)
	}
	if !strings.HasSuffix(got, "..") {
		t.Errorf("TruncateLabel long = %q, want .. suffix", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b&"c"`); strings.ContainsAny(got, `<&"`) && !strings.Contains(got, "&") {
		t.Errorf("EscapeXML left raw metacharacters: %q", got)
	}
	if got := EscapeXML("a<b"); got != "a&lt;b" {
		t.Errorf("EscapeXML(a<b) = %q, want a&lt;b", got)
	}
}

func TestApproxTextWidth(t *testing.T) {
	if w := ApproxTextWidth("", 11); w != 0 {
		t.Errorf("ApproxTextWidth empty = %v, want 0", w)
	}
	if ApproxTextWidth("abcdef", 11) <= ApproxTextWidth("abc", 11) {
		t.Error("ApproxTextWidth not monotonic in text length")
	}
}

func TestSeriesColor_Cycles(t *testing.T) {
	if SeriesColor(0) != SeriesColor(len(seriesPalette)) {
		t.Error("SeriesColor does not cycle through the palette")
	}
}

func TestStyles_EscapeLabelText(t *testing.T) {
	for _, s := range []Style{Simple{}, Midnight{}} {
		var buf bytes.Buffer
		s.RenderLabel(&buf, Label{Text: `<script>`, X: 10, Y: 10})
		if strings.Contains(buf.String(), "<script>") {
			t.Errorf("%s style emitted unescaped label text", s.Name())
		}
	}
}

func TestStyles_MarkKinds(t *testing.T) {
	for _, s := range []Style{Simple{}, Midnight{}} {
		var buf bytes.Buffer
		s.RenderMark(&buf, Mark{Kind: "bar", X: 50, Y: 10, BaselineY: 100, BarWidth: 20})
		if !strings.Contains(buf.String(), "<rect") {
			t.Errorf("%s style bar mark = %q, want <rect", s.Name(), buf.String())
		}

		buf.Reset()
		s.RenderMark(&buf, Mark{Kind: "line", X: 50, Y: 10})
		if !strings.Contains(buf.String(), "<circle") {
			t.Errorf("%s style point mark = %q, want <circle", s.Name(), buf.String())
		}
	}
}

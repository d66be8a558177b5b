package summarization

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateTitleShortTitleUnchanged(t *testing.T) {
	title := "Profile Review for Jane"
	if got := truncateTitle(title); got != title {
		t.Fatalf("short title should pass through, got %q", got)
	}
}

func TestTruncateTitleCountsRunes(t *testing.T) {
	// 70 个多字节字符，按字节截断会切在字符中间
	title := strings.Repeat("档", 70)
	got := truncateTitle(title)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is not valid utf-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != maxTitleLength {
		t.Fatalf("expected %d runes, got %d", maxTitleLength, n)
	}
}

package richtext

import (
	"strings"
	"testing"
)

func TestPlainTextLength(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"paragraph", "<p>hello</p>", 5},
		{"nbsp", "<p>a&nbsp;b</p>", 2},
		{"image only", `<p><img src="data:image/png;base64,AAAA"></p>`, 0},
		{"korean", "<p>안녕하세요</p>", 5},
		{"trimmed", "<p>  hi  </p>\n", 2},
		{"nested", "<p><strong>굵게</strong> 보통</p>", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainTextLength(tt.html); got != tt.want {
				t.Errorf("PlainTextLength(%q) = %d, want %d", tt.html, got, tt.want)
			}
		})
	}
}

func TestPlainTextLength_Boundary(t *testing.T) {
	html := "<p>" + strings.Repeat("가", 1000) + "</p>"
	if got := PlainTextLength(html); got != 1000 {
		t.Errorf("got %d, want 1000", got)
	}
}

func TestStripTitlePrefix(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"[LG 트윈스] 오늘 경기", "오늘 경기"},
		{"오늘 경기", "오늘 경기"},
		{"[a][b] 제목", "[b] 제목"},
		{"제목 [끝]", "제목 "},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripTitlePrefix(tt.title); got != tt.want {
			t.Errorf("StripTitlePrefix(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestLength(t *testing.T) {
	if got := Length("두산 베어스"); got != 6 {
		t.Errorf("Length = %d, want 6", got)
	}
}

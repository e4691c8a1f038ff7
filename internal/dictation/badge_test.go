package dictation

import (
	"strings"
	"testing"
)

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "금메달"},
		{95, "은메달"},
		{90, "은메달"},
		{89, "동메달"},
		{72, "동메달"},
		{70, "동메달"},
		{69, "파이팅"},
		{50, "파이팅"},
		{49, "처음이"},
		{0, "처음이"},
	}

	for _, tt := range tests {
		got := BadgeFor(tt.score)
		if !strings.Contains(got, tt.want) {
			t.Errorf("BadgeFor(%d) = %q, want tier containing %q", tt.score, got, tt.want)
		}
	}
}

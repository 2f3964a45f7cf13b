package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
		ok       bool
	}{
		{name: "正の整数", value: "10", fallback: 0, want: 10, ok: true},
		{name: "前後の空白を許容する", value: " 5 ", fallback: 0, want: 5, ok: true},
		{name: "空文字はフォールバック", value: "", fallback: 3, want: 3, ok: false},
		{name: "数値以外はフォールバック", value: "abc", fallback: 3, want: 3, ok: false},
		{name: "ゼロはフォールバック", value: "0", fallback: 3, want: 3, ok: false},
		{name: "負数はフォールバック", value: "-1", fallback: 3, want: 3, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePositiveInt(tt.value, tt.fallback)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

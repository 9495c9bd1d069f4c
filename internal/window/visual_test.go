package window

import (
	"slices"
	"testing"
)

func TestGLXVisualAttribs(t *testing.T) {
	got := glxVisualAttribs(DefaultConfig("v"))
	want := []int32{
		glxRGBA, glxDoubleBuffer,
		glxRedSize, 8, glxGreenSize, 8, glxBlueSize, 8,
		glxAlphaSize, 8,
		glxDepthSize, 8, glxStencilSize, 8,
		glxNone,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	cfg := Config{ColorBits: 24, DepthBits: 24, StencilBits: 0}
	got = glxVisualAttribs(cfg)
	if slices.Contains(got, glxAlphaSize) {
		t.Fatalf("expected no alpha request for 24 bits, got %v", got)
	}
	if got[len(got)-1] != glxNone {
		t.Fatalf("expected zero-terminated list, got %v", got)
	}
}

func TestChannelBits(t *testing.T) {
	tests := []struct {
		bits, rgb, alpha int
	}{
		{32, 8, 8},
		{24, 8, 0},
		{16, 5, 0},
		{1, 1, 0},
	}
	for _, tt := range tests {
		rgb, alpha := channelBits(tt.bits)
		if rgb != tt.rgb || alpha != tt.alpha {
			t.Fatalf("%d bits: expected %d/%d, got %d/%d", tt.bits, tt.rgb, tt.alpha, rgb, alpha)
		}
	}
}

func TestFormatBitsSatisfies(t *testing.T) {
	want := formatBits{Color: 32, Depth: 24, Stencil: 8}
	tests := []struct {
		name string
		have formatBits
		ok   bool
	}{
		{"exact without alpha", formatBits{Color: 24, Depth: 24, Stencil: 8}, true},
		{"more", formatBits{Color: 32, Depth: 32, Stencil: 8}, true},
		{"shallow color", formatBits{Color: 16, Depth: 24, Stencil: 8}, false},
		{"shallow depth", formatBits{Color: 32, Depth: 16, Stencil: 8}, false},
		{"no stencil", formatBits{Color: 32, Depth: 24}, false},
	}
	for _, tt := range tests {
		if got := tt.have.satisfies(want); got != tt.ok {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.ok, got)
		}
	}
}

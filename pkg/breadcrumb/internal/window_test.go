package internal_test

import (
	"testing"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/internal"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsToSDLFlags(t *testing.T) {
	tests := []struct {
		name string
		opts internal.WindowOptions
		want uint32
	}{
		{
			name: "zero value is a plain shown window",
			opts: internal.WindowOptions{},
			want: sdl.WINDOW_SHOWN,
		},
		{
			name: "hidden omits shown",
			opts: internal.WindowOptions{Hidden: true},
			want: 0,
		},
		{
			name: "borderless resizable",
			opts: internal.WindowOptions{Borderless: true, Resizable: true},
			want: sdl.WINDOW_SHOWN | sdl.WINDOW_BORDERLESS | sdl.WINDOW_RESIZABLE,
		},
		{
			name: "fullscreen desktop",
			opts: internal.WindowOptions{FullscreenDesktop: true},
			want: sdl.WINDOW_SHOWN | sdl.WINDOW_FULLSCREEN_DESKTOP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.ToSDLFlags(); got != tt.want {
				t.Errorf("ToSDLFlags() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestWindowOptionsIsZero(t *testing.T) {
	if !(internal.WindowOptions{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if (internal.WindowOptions{Resizable: true}).IsZero() {
		t.Error("non-zero value should not report IsZero")
	}
}

func TestHexToColor(t *testing.T) {
	c := internal.HexToColor(0x1E90FF)
	want := sdl.Color{R: 0x1E, G: 0x90, B: 0xFF, A: 255}
	if c != want {
		t.Errorf("HexToColor(0x1E90FF) = %+v, want %+v", c, want)
	}
}

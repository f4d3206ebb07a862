package capyspa

import (
	"testing"

	"github.com/vovakirdan/yuzu-spa/internal/config"
)

func TestInputTrackerStartsCentered(t *testing.T) {
	cfg := config.Default()
	tr := NewInputTracker(&cfg)
	if tr.X() != 260 {
		t.Errorf("X() = %v, expected 260", tr.X())
	}
}

func TestInputTrackerKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want float64
	}{
		{"none", nil, 260},
		{"arrow left", []string{"ArrowLeft"}, 248},
		{"terminal left", []string{"left"}, 248},
		{"a", []string{"a"}, 248},
		{"A", []string{"A"}, 248},
		{"right", []string{"ArrowRight"}, 272},
		{"d", []string{"d"}, 272},
		{"D", []string{"D"}, 272},
		{"both cancel", []string{"a", "ArrowRight"}, 260},
		{"two left aliases", []string{"a", "ArrowLeft"}, 248},
		{"unknown key", []string{"w"}, 260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tr := NewInputTracker(&cfg)
			for _, k := range tt.keys {
				tr.KeyDown(k)
			}
			tr.Step()
			if tr.X() != tt.want {
				t.Errorf("X() = %v, expected %v", tr.X(), tt.want)
			}
		})
	}
}

func TestInputTrackerKeyUpKeepsOtherAlias(t *testing.T) {
	cfg := config.Default()
	tr := NewInputTracker(&cfg)
	tr.KeyDown("a")
	tr.KeyDown("ArrowLeft")
	tr.KeyUp("a")
	tr.Step()
	if tr.X() != 248 {
		t.Errorf("X() = %v, expected 248 with ArrowLeft still held", tr.X())
	}
}

func TestInputTrackerClamp(t *testing.T) {
	cfg := config.Default()
	tr := NewInputTracker(&cfg)

	tr.KeyDown("left")
	for range 100 {
		tr.Step()
	}
	if tr.X() != 0 {
		t.Errorf("X() = %v, expected clamp to 0", tr.X())
	}

	tr.KeyUp("left")
	tr.KeyDown("right")
	for range 100 {
		tr.Step()
	}
	if tr.X() != 520 {
		t.Errorf("X() = %v, expected clamp to 520", tr.X())
	}
}

func TestInputTrackerPointer(t *testing.T) {
	tests := []struct {
		name     string
		x, width float64
		want     float64
	}{
		{"center of half-size display", 150, 300, 260},
		{"left edge", 0, 300, 0},
		{"right edge", 300, 300, 520},
		{"full size", 100, 600, 60},
		{"beyond right", 1000, 600, 520},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tr := NewInputTracker(&cfg)
			tr.PointerMove(tt.x, tt.width)
			if tr.X() != tt.want {
				t.Errorf("PointerMove(%v, %v) -> X() = %v, expected %v", tt.x, tt.width, tr.X(), tt.want)
			}
		})
	}
}

func TestInputTrackerPointerZeroWidth(t *testing.T) {
	cfg := config.Default()
	tr := NewInputTracker(&cfg)
	tr.PointerMove(10, 0)
	if tr.X() != 260 {
		t.Errorf("zero display width should be ignored, X() = %v", tr.X())
	}
}

func TestInputTrackerLastWriterWins(t *testing.T) {
	cfg := config.Default()
	tr := NewInputTracker(&cfg)
	tr.KeyDown("right")
	tr.PointerMove(100, 600) // x = 60
	tr.Step()                // key integration after the pointer write
	if tr.X() != 72 {
		t.Errorf("X() = %v, expected 72", tr.X())
	}
	tr.PointerMove(300, 600)
	if tr.X() != 260 {
		t.Errorf("X() = %v, expected pointer to win with 260", tr.X())
	}
}

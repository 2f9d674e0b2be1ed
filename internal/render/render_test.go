package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/syedasadmaq/twisted-graphene-app1/internal/moire"
)

func smallField(t *testing.T) *moire.FieldResult {
	t.Helper()
	p := moire.ClassicBilayer
	p.GridSize = 16
	return p.Compose(nil)
}

func TestViridisEndpoints(t *testing.T) {
	colors := Viridis(10).Colors()
	if len(colors) != 10 {
		t.Fatalf("len = %d, want 10", len(colors))
	}

	first := colors[0].(color.RGBA)
	if first.R != 0x44 || first.G != 0x01 || first.B != 0x54 {
		t.Errorf("first color = %+v, want #440154", first)
	}
	last := colors[9].(color.RGBA)
	if last.R != 0xfd || last.G != 0xe7 || last.B != 0x25 {
		t.Errorf("last color = %+v, want #fde725", last)
	}
}

func TestViridisSizes(t *testing.T) {
	for _, n := range []int{2, 3, 64, 255} {
		if got := len(Viridis(n).Colors()); got != n {
			t.Errorf("Viridis(%d) has %d colors", n, got)
		}
	}
	// Degenerate sizes are raised to a usable palette.
	if got := len(Viridis(0).Colors()); got != 2 {
		t.Errorf("Viridis(0) has %d colors, want 2", got)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(smallField(t), &buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(sig) || !bytes.Equal(buf.Bytes()[:len(sig)], sig) {
		t.Errorf("output does not start with a PNG signature")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.png")
	if err := SavePNG(smallField(t), path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved PNG is empty")
	}
}

func TestProfile(t *testing.T) {
	res := smallField(t)

	if _, err := Profile(res, 8); err != nil {
		t.Errorf("Profile(8): %v", err)
	}
	if _, err := Profile(res, -1); err == nil {
		t.Error("Profile(-1) should fail")
	}
	if _, err := Profile(res, 16); err == nil {
		t.Error("Profile(16) should fail")
	}

	path := filepath.Join(t.TempDir(), "profile.png")
	if err := SaveProfilePNG(res, 0, path); err != nil {
		t.Fatalf("SaveProfilePNG: %v", err)
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", "twisted_graphene.png"},
		{"abc123", "twisted_graphene_abc123.png"},
	}
	for _, tt := range tests {
		if got := ExportFilename(tt.id); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

package iconpdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sanaviron/iconhelper/icon"
)

func TestRenderIcons(t *testing.T) {
	dir := t.TempDir()
	for _, v := range icon.Variants() {
		var buf bytes.Buffer
		if err := Write(&buf, v.Icon(), icon.DefaultWidth, icon.DefaultHeight, icon.DefaultBorder); err != nil {
			t.Fatalf("can't render %s: %s", v, err)
		}
		out := buf.Bytes()
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("%s: missing pdf header", v)
		}
		if !bytes.Contains(out, []byte("%%EOF")) {
			t.Errorf("%s: missing pdf trailer", v)
		}
		if err := os.WriteFile(filepath.Join(dir, v.Filename()+".pdf"), out, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, icon.SplitHorizontal.Icon(), 0, 0, 4)
	if !errors.Is(err, icon.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written")
	}
}

func TestNoDraw(t *testing.T) {
	if _, err := Render(icon.Compose("Empty"), 64, 64, 4); !errors.Is(err, icon.ErrNoDraw) {
		t.Errorf("expected ErrNoDraw, got %v", err)
	}
}

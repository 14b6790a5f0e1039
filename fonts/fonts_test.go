package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		if name.Get() == nil {
			t.Fatalf("%s should be loaded", name)
		}
	}
	if Title.Get().Metrics().Height <= Small.Get().Metrics().Height {
		t.Fatal("title face should be taller than the small face")
	}
}

func TestGet_MissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontWithSize_RejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("garbage", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
}

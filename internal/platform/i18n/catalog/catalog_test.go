package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pl-PL") {
		t.Fatalf("expected locale pl-PL")
	}
	if got := len(bundle.Keys(BaseLocale)); got == 0 {
		t.Fatalf("expected %s messages", BaseLocale)
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle := Default()
	base := len(bundle.Keys(BaseLocale))
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) != 0 {
			t.Fatalf("locale %s is missing keys %v", locale, missing)
		}
		if got := len(bundle.Keys(locale)); got != base {
			t.Fatalf("locale %s defines %d keys, base defines %d", locale, got, base)
		}
	}
}

func TestDefaultRegistersMessagesWithPrinter(t *testing.T) {
	_ = Default()
	if got := message.NewPrinter(language.MustParse("pl-PL")).Sprintf("web.home.waiting"); got != "Oczekiwanie na bazę danych..." {
		t.Fatalf("pl-PL waiting = %q", got)
	}
	if got := message.NewPrinter(language.English).Sprintf("web.home.waiting"); got != "Waiting for database..." {
		t.Fatalf("en waiting = %q", got)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "catalogtest.a": "a"
  "catalogtest.b": "b"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/pl-PL/web.yaml"), `locale: "pl-PL"
namespace: "web"
messages:
  "catalogtest.a": "ą"
`)
	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, ok := bundle.Message("pl-PL", "catalogtest.a"); !ok || got != "ą" {
		t.Fatalf("Message(pl-PL, catalogtest.a) = %q, %v", got, ok)
	}
	if got, ok := bundle.Message("pl-PL", "catalogtest.b"); !ok || got != "b" {
		t.Fatalf("Message(pl-PL, catalogtest.b) = %q, %v", got, ok)
	}
	if _, ok := bundle.Message("pl-PL", "missing"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
	if missing := bundle.MissingKeys("pl-PL"); len(missing) != 1 || missing[0] != "catalogtest.b" {
		t.Fatalf("MissingKeys(pl-PL) = %v, want [catalogtest.b]", missing)
	}

	if err := bundle.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	printer := message.NewPrinter(language.MustParse("pl-PL"))
	if got := printer.Sprintf("catalogtest.a"); got != "ą" {
		t.Fatalf("pl-PL catalogtest.a = %q, want %q", got, "ą")
	}
	if got := printer.Sprintf("catalogtest.b"); got != "b" {
		t.Fatalf("pl-PL catalogtest.b = %q, want base-locale fallback %q", got, "b")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocalePathMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "pl-PL"
namespace: "web"
messages:
  "a.key": "a"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pl-PL/web.yaml"), `locale: "pl-PL"
namespace: "web"
messages:
  "a.key": "a"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), "locale: [\n")
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected yaml parse error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/karta/internal/platform/branding"
)

func TestComposePageTitleAddsBrandNameSuffix(t *testing.T) {
	t.Parallel()

	if got, want := ComposePageTitle("Menu"), "Menu | "+branding.AppName; got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleKeepsExistingSuffix(t *testing.T) {
	t.Parallel()

	if got, want := ComposePageTitle("Menu | "+branding.AppName), "Menu | "+branding.AppName; got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleFallsBackToBrand(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "  ", branding.AppName} {
		if got := ComposePageTitle(title); got != branding.AppName {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", title, got, branding.AppName)
		}
	}
}

func TestLayoutRendersMetadataAndChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})
	var b strings.Builder
	err := Layout(LayoutOptions{Title: "Menu", Lang: "pl-PL", Description: "Opis"}).
		Render(templ.WithChildren(context.Background(), child), &b)
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	for _, marker := range []string{
		`<!DOCTYPE html>`,
		`<html lang="pl-PL">`,
		`<title>Menu | Karta</title>`,
		`<meta name="description" content="Opis">`,
		`<link rel="stylesheet" href="/static/app.css">`,
		`<main id="main" class="container mx-auto px-4 py-10"><p id="child">hello</p></main>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("layout missing %q in %q", marker, got)
		}
	}
}

func TestLayoutDefaultsWithoutChildren(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := Layout(LayoutOptions{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `<html lang="en-US">`) {
		t.Fatalf("expected default lang, got %q", got)
	}
	if !strings.Contains(got, `<a href="/?lang=en-US" hreflang="en-US" aria-current="true">EN</a>`) {
		t.Fatalf("expected default language marked current, got %q", got)
	}
	if !strings.Contains(got, `<title>Karta</title>`) {
		t.Fatalf("expected brand title, got %q", got)
	}
	if !strings.Contains(got, `content="Digital menu and order taking"`) {
		t.Fatalf("expected default description, got %q", got)
	}
	if !strings.Contains(got, `<main id="main" class="container mx-auto px-4 py-10"></main>`) {
		t.Fatalf("expected empty main, got %q", got)
	}
}

func TestLayoutEscapesTitle(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := Layout(LayoutOptions{Title: "<script>"}).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if strings.Contains(b.String(), "<title><script>") {
		t.Fatalf("expected escaped title, got %q", b.String())
	}
}

func TestLayoutRendersLanguageSwitcher(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := Layout(LayoutOptions{Lang: "pl-PL"}).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	for _, marker := range []string{
		`<nav aria-label="Język">`,
		`<a href="/?lang=en-US" hreflang="en-US">EN</a>`,
		`<a href="/?lang=pl-PL" hreflang="pl-PL" aria-current="true">PL</a>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("layout missing %q in %q", marker, got)
		}
	}
}

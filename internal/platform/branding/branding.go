// Package branding holds product naming shared by templates and logs.
package branding

// AppName is the user-facing product name.
const AppName = "Karta"

// Package data holds the static tables the site is built from.
package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

// Site is overlaid at startup from the optional site file. serve reloads it
// between rebuilds; a build only ever reads it.
var Site = model.SiteConfig{
	Name:          "Alex Johnson",
	Tagline:       "Senior Software Engineer · Building tools people love",
	Description:   "Personal portfolio and blog of Alex Johnson — software engineer specializing in web, AI, and developer tooling.",
	URL:           "https://yourusername.github.io",
	GitHub:        "https://github.com/yourusername",
	LinkedIn:      "https://linkedin.com/in/yourusername",
	Email:         "alex@example.com",
	TwitterHandle: "@yourusername",
}

var defaultSite = Site

// ReloadSite resets Site to its built-in values and overlays filename again,
// so fields removed from the file fall back to their defaults. On error Site
// keeps its previous value.
func ReloadSite(filename string) (bool, error) {
	prev := Site
	Site = defaultSite
	loaded, err := OverlaySite(filename)
	if err != nil {
		Site = prev
		return false, err
	}
	return loaded, nil
}

// OverlaySite reads a YAML file of site fields over Site. Fields absent from
// the file keep their defaults. A missing file is not an error.
func OverlaySite(filename string) (bool, error) {
	if filename == "" {
		return false, nil
	}
	yamlFile, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading site file %s: %w", filename, err)
	}

	site := Site
	if err := yaml.UnmarshalStrict(yamlFile, &site); err != nil {
		return false, fmt.Errorf("error unmarshalling site file %s: %w", filename, err)
	}
	Site = site
	return true, nil
}

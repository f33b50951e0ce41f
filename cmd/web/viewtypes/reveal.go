package viewtypes

import (
	"strconv"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/pkg/viewport"
)

// Region is one revealed block of a page.
type Region struct {
	Key string
	// Threshold overrides viewport.DefaultThreshold when non-zero.
	Threshold float64
}

// Options returns the tracker options for the region.
func (r Region) Options() *viewport.Options {
	opts := viewport.DefaultOptions()
	if r.Threshold > 0 {
		opts.Threshold = r.Threshold
	}
	return opts
}

// DOMID is the element id carrying the region.
func (r Region) DOMID() string {
	return "reveal-" + r.Key
}

// Page names used in view stream URLs.
const (
	PageHome      = "home"
	PageRegister  = "register"
	PageDashboard = "dashboard"
)

var pageRegions = map[string][]Region{
	PageHome: {
		{Key: "heroTitle"},
		{Key: "heroDescription"},
		{Key: "heroButtons"},
		{Key: "features"},
		{Key: "feature1"},
		{Key: "feature2"},
		{Key: "feature3"},
		{Key: "feature4"},
		{Key: "feature5"},
		{Key: "cta", Threshold: 0.2},
	},
	PageRegister: {
		{Key: "registerTitle"},
		{Key: "registerForm"},
	},
	PageDashboard: {
		{Key: "dashboardTitle"},
		{Key: "dashboard"},
	},
}

// PageRegions returns the regions revealed on page.
func PageRegions(page string) ([]Region, bool) {
	r, ok := pageRegions[page]
	if !ok {
		return nil, false
	}
	return append([]Region(nil), r...), true
}

// FeatureRegion is the region of the i-th (1-based) landing feature card.
func FeatureRegion(i int) Region {
	return Lookup(PageHome, "feature"+strconv.Itoa(i))
}

// Lookup returns the region key of page, with its configured threshold.
func Lookup(page, key string) Region {
	for _, r := range pageRegions[page] {
		if r.Key == key {
			return r
		}
	}
	return Region{Key: key}
}

package classify

import "strings"

// DeviceCategory is the coarse bucket a listing's model text falls into.
type DeviceCategory int

const (
	DeviceUnknown DeviceCategory = iota
	DeviceIphone
	DeviceAndroid
)

// String returns the display label for the category.
func (c DeviceCategory) String() string {
	switch c {
	case DeviceIphone:
		return "iPhone"
	case DeviceAndroid:
		return "Android"
	default:
		return "Other"
	}
}

// DeviceCategories lists every category in display order.
var DeviceCategories = []DeviceCategory{DeviceIphone, DeviceAndroid, DeviceUnknown}

// Generation is the finer bucket for iPhone-classified listings.
type Generation int

const (
	GenUnknown Generation = iota
	Gen17
	Gen16
	Gen15
	Gen14
	GenOlder
)

// String returns the display label for the generation.
func (g Generation) String() string {
	switch g {
	case Gen17:
		return "17"
	case Gen16:
		return "16"
	case Gen15:
		return "15"
	case Gen14:
		return "14"
	case GenOlder:
		return "Older"
	default:
		return "Unknown"
	}
}

// Generations lists every generation bucket in display order.
var Generations = []Generation{Gen17, Gen16, Gen15, Gen14, GenOlder, GenUnknown}

// androidMarkers identify Android listings once the iPhone check has failed.
var androidMarkers = []string{"galaxy", "samsung", "pixel", "oneplus", "nothing"}

// generationRules map model-text substrings to generation buckets. Ordered:
// first match wins, so "iphone 11 pro" hits the "iphone 11" rule while an
// unlisted number like "iphone 9" falls through to GenUnknown.
var generationRules = []struct {
	needle string
	gen    Generation
}{
	{"iphone 17", Gen17},
	{"iphone 16", Gen16},
	{"iphone 15", Gen15},
	{"iphone 14", Gen14},
	{"iphone 13", GenOlder},
	{"iphone 12", GenOlder},
	{"iphone 11", GenOlder},
	{"iphone x", GenOlder},
	{"iphone se", GenOlder},
	{"iphone 8", GenOlder},
}

// Device classifies free-form model text into a device category and, for
// iPhone listings, a generation bucket. All matching is case-insensitive
// substring matching over the whole field.
//
// The category check accepts "apple" as an iPhone marker but the generation
// rules require the literal "iphone", so an "Apple Watch" listing classifies
// as (DeviceIphone, GenUnknown).
func Device(text string) (DeviceCategory, Generation) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "iphone") || strings.Contains(lower, "apple") {
		return DeviceIphone, generation(lower)
	}
	for _, marker := range androidMarkers {
		if strings.Contains(lower, marker) {
			return DeviceAndroid, GenUnknown
		}
	}
	return DeviceUnknown, GenUnknown
}

func generation(lower string) Generation {
	if !strings.Contains(lower, "iphone") {
		return GenUnknown
	}
	for _, rule := range generationRules {
		if strings.Contains(lower, rule.needle) {
			return rule.gen
		}
	}
	return GenUnknown
}

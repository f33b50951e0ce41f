package viewtypes

import "github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Reusable Tailwind class strings used across multiple template files.
// ============================================================================

// SectionBadge is the pill shown above section headings.
var SectionBadge = "inline-block px-3 py-1 rounded-full bg-blue-100 text-blue-700 text-sm font-medium mb-4"

// PrimaryButton is the filled call-to-action style.
var PrimaryButton = "inline-flex items-center justify-center gap-2 px-6 py-3 rounded-lg bg-blue-600 text-white font-medium shadow-sm hover:bg-blue-700 transition-colors disabled:opacity-60 disabled:cursor-not-allowed"

// OutlineButton is the secondary action style.
var OutlineButton = "inline-flex items-center justify-center gap-2 px-6 py-3 rounded-lg border border-gray-300 bg-white text-gray-800 font-medium hover:bg-gray-50 transition-colors"

// Card is the white panel used by forms, stat cards and tables.
var Card = "bg-white rounded-xl border border-gray-200 shadow-sm"

// FieldInput is the text input style; FieldInputError is added when the field failed validation.
var (
	FieldInput      = "w-full px-3 py-2 rounded-lg border border-gray-300 focus:outline-none focus:ring-2 focus:ring-blue-500"
	FieldInputError = "border-red-500 focus:ring-red-500"
	FieldError      = "mt-1 text-sm text-red-600"
	FieldLabel      = "block text-sm font-medium text-gray-700 mb-1"
)

// Reveal transition classes, toggled by the $reveal.<key> signal.
const (
	RevealBase    = "transition-all duration-700 ease-out"
	RevealShown   = "opacity-100 translate-y-0"
	RevealHidden  = "opacity-0 translate-y-10"
	NavbarBase    = "fixed top-0 inset-x-0 z-50 transition-all duration-300"
	NavbarSolid   = "bg-white/90 backdrop-blur shadow-sm py-3"
	NavbarClear   = "bg-transparent py-5"
	NavLinkActive = "text-blue-600 font-semibold"
	NavLinkIdle   = "text-gray-600 hover:text-blue-600"
)

// Badge holds the presentation of one participant status.
type Badge struct {
	Class string
	Icon  string
}

var badges = map[participants.Status]Badge{
	participants.StatusConfirmed: {Class: "bg-green-100 text-green-800", Icon: "fa-circle-check"},
	participants.StatusPending:   {Class: "bg-yellow-100 text-yellow-800", Icon: "fa-clock"},
	participants.StatusCancelled: {Class: "bg-red-100 text-red-800", Icon: "fa-circle-xmark"},
	participants.StatusNeutral:   {Class: "bg-gray-100 text-gray-800", Icon: "fa-circle-question"},
}

// StatusBadge returns the badge for a status label.
func StatusBadge(label string) Badge {
	return badges[participants.Classify(label)]
}

// Tone classes for stat card icons.
var toneClasses = map[string]string{
	"blue":   "bg-blue-100 text-blue-600",
	"green":  "bg-green-100 text-green-600",
	"purple": "bg-purple-100 text-purple-600",
}

// ToneClass returns the icon background for a stat tone.
func ToneClass(tone string) string {
	if c, ok := toneClasses[tone]; ok {
		return c
	}
	return "bg-gray-100 text-gray-600"
}

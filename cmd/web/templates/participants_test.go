package templates

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/i18n"
)

func TestStatusLabel(t *testing.T) {
	en := i18n.NewPrinter(language.English)
	fr := i18n.NewPrinter(language.French)

	tests := []struct {
		p     *i18n.Printer
		label string
		want  string
	}{
		{en, "Confirmé", "Confirmed"},
		{en, "En attente", "Pending"},
		{en, "Annulé", "Cancelled"},
		{fr, "Confirmed", "Confirmé"},
		{fr, "Confirmé", "Confirmé"},
		{en, "Remboursé", "Remboursé"},
		{fr, "", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, statusLabel(tt.p, tt.label), "%s %q", tt.p.Lang(), tt.label)
	}
}

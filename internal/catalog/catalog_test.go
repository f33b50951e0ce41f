package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

func TestSample_Participants(t *testing.T) {
	ps := Participants()
	require.Len(t, ps, 6)
	require.Equal(t, participants.Participant{
		ID:     1,
		Name:   "Sophie Martin",
		Email:  "sophie.martin@example.com",
		Event:  "Conférence annuelle",
		Status: "Confirmé",
		Date:   "2023-05-15",
	}, ps[0])
	require.Equal(t, "Antoine Durand", ps[5].Name)
	require.Equal(t, "Salon d'exposition", ps[3].Event)
}

func TestSample_SophieScenario(t *testing.T) {
	got := participants.Filter(Participants(), "sophie")
	require.Len(t, got, 1)
	require.Equal(t, "sophie.martin@example.com", got[0].Email)

	require.Empty(t, participants.Filter(Participants(), "zzz"))
}

func TestSample_EveryStatusIsRecognised(t *testing.T) {
	for _, p := range Participants() {
		require.NotEqual(t, participants.StatusNeutral, participants.Classify(p.Status), p.Name)
	}
}

func TestSample_StatsAndFeatures(t *testing.T) {
	c := Sample()
	require.Len(t, c.Stats, 3)
	require.Equal(t, 124.0, c.Stats[0].Value)
	require.Equal(t, StatPercent, c.Stats[2].Kind)

	require.Len(t, c.Features, 5)
	for i, f := range c.Features {
		require.Equal(t, (i+1)*100, f.Delay)
	}
}

func TestSample_ReturnsCopies(t *testing.T) {
	a := Participants()
	a[0].Name = "changed"
	require.Equal(t, "Sophie Martin", Participants()[0].Name)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte("participants:\n  - id: 1\n  - id: 1\n"))
	require.ErrorContains(t, err, "duplicate participant id 1")

	_, err = Parse([]byte("stats:\n  - key: x\n    kind: ratio\n"))
	require.ErrorContains(t, err, "unknown kind")

	_, err = Parse([]byte("participants: [\n"))
	require.Error(t, err)
}

package naturallanguage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/naturallanguage"
)

func TestNewResolver(t *testing.T) {
	for _, engine := range []string{"", "when", "WHEN", "datemath", " DateMath "} {
		r, err := naturallanguage.NewResolver(engine, "UTC")
		require.NoError(t, err, "engine %q", engine)
		assert.NotNil(t, r)
	}

	_, err := naturallanguage.NewResolver("chrono", "UTC")
	assert.ErrorIs(t, err, naturallanguage.ErrUnknownEngine)

	_, err = naturallanguage.NewResolver("when", "Invalid/Timezone")
	assert.Error(t, err)

	_, err = naturallanguage.NewResolver("datemath", "Invalid/Timezone")
	assert.Error(t, err)
}

func TestEngines(t *testing.T) {
	assert.Equal(t, naturallanguage.EngineDatemath, naturallanguage.Engines()[0])

	assert.True(t, naturallanguage.ValidEngine("when"))
	assert.True(t, naturallanguage.ValidEngine(" DATEMATH"))
	assert.False(t, naturallanguage.ValidEngine(""))
	assert.False(t, naturallanguage.ValidEngine("chrono"))
}

func TestWhenEngine_LargeOffset(t *testing.T) {
	r, err := naturallanguage.NewResolver(naturallanguage.EngineWhen, "UTC")
	require.NoError(t, err)

	m, ok, err := r.Resolve("in 9999 months", refTime)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "in 9999 months", m.Text)
	assert.True(t, m.Time.Equal(time.Date(2857, 8, 1, 0, 0, 0, 0, time.UTC)), "time %v", m.Time)
}

func TestChainResolver(t *testing.T) {
	hit := naturallanguage.TemporalMatch{Index: 4, Text: "soon", Time: refTime}
	none := &stubResolver{match: func(string) (naturallanguage.TemporalMatch, bool, error) {
		return naturallanguage.TemporalMatch{}, false, nil
	}}
	found := &stubResolver{match: func(string) (naturallanguage.TemporalMatch, bool, error) {
		return hit, true, nil
	}}
	boom := errors.New("boom")
	failing := &stubResolver{match: func(string) (naturallanguage.TemporalMatch, bool, error) {
		return naturallanguage.TemporalMatch{}, false, boom
	}}

	t.Run("falls through to the next resolver", func(t *testing.T) {
		m, ok, err := naturallanguage.NewChainResolver(none, found).Resolve("see soon", refTime)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, hit, m)
	})

	t.Run("an error stops the chain", func(t *testing.T) {
		_, ok, err := naturallanguage.NewChainResolver(failing, found).Resolve("see soon", refTime)
		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)
	})

	t.Run("nothing found", func(t *testing.T) {
		_, ok, err := naturallanguage.NewChainResolver(none, none).Resolve("see soon", refTime)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func newWhenExtractor() naturallanguage.Extractor {
	return naturallanguage.New(
		naturallanguage.NewWhenResolver(time.UTC),
		naturallanguage.WithClock(func() time.Time { return refTime }),
	)
}

func TestWhenResolver_NoExpression(t *testing.T) {
	r := naturallanguage.NewWhenResolver(time.UTC)

	_, ok, err := r.Resolve("Call mom", refTime)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWhenResolver_BareMonthAbbreviation(t *testing.T) {
	res, err := newWhenExtractor().Parse("I may go to the store")
	require.NoError(t, err)

	assert.Equal(t, naturallanguage.Result{Title: "I may go to the store"}, res)
}

func TestWhenResolver_LeadingPreposition(t *testing.T) {
	tests := []struct {
		text      string
		wantTitle string
		wantHour  int
	}{
		{"Email Anna at noon", "Email Anna", 12},
		{"Meet at 5pm tomorrow", "Meet", 17},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res, err := newWhenExtractor().Parse(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, res.Title)
			require.NotNil(t, res.DueDate)
			assert.Equal(t, tt.wantHour, res.DueDate.Hour())
		})
	}
}

func TestWhenResolver_IgnoresPartsOfLiterals(t *testing.T) {
	for _, text := range []string{"meet on 2024-02-30", "task 2024-05-03 14:00 go"} {
		t.Run(text, func(t *testing.T) {
			res, err := newWhenExtractor().Parse(text)
			require.NoError(t, err)

			assert.Equal(t, text, res.Title)
			assert.Nil(t, res.DueDate)
		})
	}
}

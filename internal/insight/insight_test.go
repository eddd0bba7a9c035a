package insight_test

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/insight"
	"absence-tracker-bot/internal/models"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingGenerator отвечает только после того, как тест отправит ответ в release
type blockingGenerator struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	release chan reply
}

type reply struct {
	text string
	err  error
}

func newBlockingGenerator() *blockingGenerator {
	return &blockingGenerator{release: make(chan reply, 1)}
}

func (g *blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	select {
	case r := <-g.release:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *blockingGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func sampleRecords() []models.AbsenceRecord {
	return []models.AbsenceRecord{{
		ID:         "r1",
		Date:       "2026-03-14",
		Department: models.DepartmentProduction,
		Shift:      models.ShiftMorning,
		TotalStaff: 20,
		Absences:   4,
		Rate:       20,
		CreatedAt:  1,
	}}
}

func waitState(t *testing.T, done <-chan insight.State) insight.State {
	t.Helper()
	select {
	case st := <-done:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("insight request did not complete")
		return insight.State{}
	}
}

func TestRequester_Success(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 0)
	done := make(chan insight.State, 1)

	outcome := r.Request(context.Background(), sampleRecords(), i18n.LanguageFrench, func(st insight.State) { done <- st })
	require.Equal(t, insight.Started, outcome)
	assert.True(t, r.State().Loading())

	gen.release <- reply{text: "Absences are stable."}
	st := waitState(t, done)

	assert.Equal(t, insight.StatusReady, st.Status)
	assert.Equal(t, "Absences are stable.", st.Text)
	assert.Equal(t, st, r.State())
	assert.False(t, r.State().Loading())
}

func TestRequester_Failures(t *testing.T) {
	cases := []struct {
		name  string
		reply reply
		want  string
	}{
		{"transport error", reply{err: errors.New("connection reset")}, insight.ErrorText},
		{"empty text", reply{text: ""}, insight.EmptyText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := newBlockingGenerator()
			r := insight.NewRequester(gen, 0)
			done := make(chan insight.State, 1)

			require.Equal(t, insight.Started, r.Request(context.Background(), sampleRecords(), i18n.LanguageSpanish, func(st insight.State) { done <- st }))
			gen.release <- tc.reply

			st := waitState(t, done)
			assert.Equal(t, insight.StatusFailed, st.Status)
			assert.Equal(t, tc.want, st.Text)
		})
	}
}

func TestRequester_Timeout(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 10*time.Millisecond)
	done := make(chan insight.State, 1)

	require.Equal(t, insight.Started, r.Request(context.Background(), sampleRecords(), i18n.LanguageSpanish, func(st insight.State) { done <- st }))

	st := waitState(t, done)
	assert.Equal(t, insight.StatusFailed, st.Status)
	assert.Equal(t, insight.ErrorText, st.Text)
}

func TestRequester_EmptyCollection(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 0)

	outcome := r.Request(context.Background(), nil, i18n.LanguageSpanish, nil)

	assert.Equal(t, insight.NoData, outcome)
	assert.Equal(t, insight.StatusIdle, r.State().Status)
	assert.Equal(t, 0, gen.Calls())
}

func TestRequester_RejectsWhileInFlight(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 0)
	done := make(chan insight.State, 2)
	callback := func(st insight.State) { done <- st }

	require.Equal(t, insight.Started, r.Request(context.Background(), sampleRecords(), i18n.LanguageSpanish, callback))
	assert.Equal(t, insight.Busy, r.Request(context.Background(), sampleRecords(), i18n.LanguageArabic, callback))
	assert.True(t, r.State().Loading())

	gen.release <- reply{text: "first"}
	st := waitState(t, done)
	assert.Equal(t, "first", st.Text)
	assert.Equal(t, 1, gen.Calls())

	select {
	case extra := <-done:
		t.Fatalf("rejected request completed: %+v", extra)
	case <-time.After(20 * time.Millisecond):
	}

	// После завершения новый запрос снова принимается
	require.Equal(t, insight.Started, r.Request(context.Background(), sampleRecords(), i18n.LanguageArabic, callback))
	gen.release <- reply{text: "second"}
	assert.Equal(t, "second", waitState(t, done).Text)
}

func TestRequester_UsesSnapshot(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 0)
	done := make(chan insight.State, 1)

	records := sampleRecords()
	require.Equal(t, insight.Started, r.Request(context.Background(), records, i18n.LanguageSpanish, func(st insight.State) { done <- st }))
	records[0].Absences = 999

	gen.release <- reply{text: "ok"}
	waitState(t, done)

	gen.mu.Lock()
	prompt := gen.prompts[0]
	gen.mu.Unlock()
	assert.NotContains(t, prompt, "999")
	assert.Contains(t, prompt, `"absences":4`)
}

func TestRequester_Reset(t *testing.T) {
	gen := newBlockingGenerator()
	r := insight.NewRequester(gen, 0)
	done := make(chan insight.State, 1)

	require.Equal(t, insight.Started, r.Request(context.Background(), sampleRecords(), i18n.LanguageSpanish, func(st insight.State) { done <- st }))
	r.Reset()
	assert.True(t, r.State().Loading(), "reset does not cancel an in-flight request")

	gen.release <- reply{text: "done"}
	waitState(t, done)
	r.Reset()
	assert.Equal(t, insight.State{}, r.State())
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := insight.BuildPrompt(sampleRecords(), i18n.LanguageArabic)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Analyze the following industrial absence data"))
	assert.Contains(t, prompt, "in Arabic")
	assert.Contains(t, prompt, `"department":"production"`)
	assert.Contains(t, prompt, `"totalStaff":20`)
}

func TestDisabledGenerator(t *testing.T) {
	_, err := insight.DisabledGenerator{}.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, insight.ErrNotConfigured)

	_, err = insight.NewGeminiGenerator(context.Background(), "", "")
	assert.ErrorIs(t, err, insight.ErrNotConfigured)
}

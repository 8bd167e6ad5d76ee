package state_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/state"
)

// ---- helpers ---------------------------------------------------------------

func itemFixture(title string) domain.ItineraryItem {
	return domain.ItineraryItem{
		ID:    uuid.New(),
		Day:   1,
		Time:  "10:00",
		Title: title,
		Cost:  10,
		Tags:  []string{"t"},
	}
}

func seeded(titles ...string) *state.Session {
	s := state.NewSession()
	for _, title := range titles {
		s.AddItem(itemFixture(title))
	}
	return s
}

func storedTitles(s *state.Session) []string {
	items := s.Items()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

// ---- profile ---------------------------------------------------------------

func TestNewSession_Defaults(t *testing.T) {
	s := state.NewSession()

	p := s.Profile()
	assert.Empty(t, p.Destination)
	assert.Equal(t, p.StartDate, p.EndDate)
	assert.Zero(t, p.Budget)
	assert.Equal(t, 1, p.Travelers)
	assert.Empty(t, p.Interests)
	assert.Empty(t, s.Items())
}

func TestSetProfile_ReplacesAllFields(t *testing.T) {
	s := state.NewSession()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	s.SetProfile(domain.TripProfile{
		Destination: "Tokyo",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 6),
		Budget:      2000,
		Travelers:   2,
		Interests:   []string{"Food"},
		Notes:       "spring",
	})

	p := s.Profile()
	assert.Equal(t, "Tokyo", p.Destination)
	assert.Equal(t, 2000, p.Budget)
	assert.Equal(t, []string{"Food"}, p.Interests)
}

func TestProfile_ReturnsCopy(t *testing.T) {
	s := state.NewSession()
	s.SetProfile(domain.TripProfile{Interests: []string{"Food"}})

	p := s.Profile()
	p.Interests[0] = "mutated"

	assert.Equal(t, []string{"Food"}, s.Profile().Interests)
}

func TestReset_RestoresDefaultsAndClearsItems(t *testing.T) {
	s := seeded("a", "b")
	s.SetProfile(domain.TripProfile{Destination: "Oslo", Budget: 300, Travelers: 4})

	s.Reset()

	assert.Empty(t, s.Profile().Destination)
	assert.Equal(t, 1, s.Profile().Travelers)
	assert.Empty(t, s.Items())
}

// ---- item store ------------------------------------------------------------

func TestAddItem_AppendsAndReturnsCount(t *testing.T) {
	s := state.NewSession()

	assert.Equal(t, 1, s.AddItem(itemFixture("a")))
	assert.Equal(t, 2, s.AddItem(itemFixture("b")))
	assert.Equal(t, []string{"a", "b"}, storedTitles(s))
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := seeded("a")

	items := s.Items()
	items[0].Title = "mutated"
	items[0].Tags[0] = "mutated"

	assert.Equal(t, "a", s.Items()[0].Title)
	assert.Equal(t, []string{"t"}, s.Items()[0].Tags)
}

func TestRemoveAt_ShiftsLaterItemsDown(t *testing.T) {
	s := seeded("a", "b", "c", "d")

	removed, err := s.RemoveAt(1)

	require.NoError(t, err)
	assert.Equal(t, "b", removed.Title)
	assert.Equal(t, []string{"a", "c", "d"}, storedTitles(s))
}

func TestRemoveAt_EveryValidPositionShrinksByOne(t *testing.T) {
	for pos := 0; pos < 3; pos++ {
		s := seeded("a", "b", "c")

		_, err := s.RemoveAt(pos)

		require.NoError(t, err, "position %d", pos)
		assert.Equal(t, 2, s.Len(), "position %d", pos)
	}
}

func TestRemoveAt_OutOfRangeLeavesStoreUnchanged(t *testing.T) {
	s := seeded("a", "b")

	for _, pos := range []int{-1, 2, 99} {
		_, err := s.RemoveAt(pos)

		require.ErrorIs(t, err, domain.ErrOutOfRange, "position %d", pos)
		assert.Equal(t, []string{"a", "b"}, storedTitles(s), "position %d", pos)
	}
}

func TestRemoveLast(t *testing.T) {
	s := seeded("a", "b")

	removed, ok := s.RemoveLast()

	require.True(t, ok)
	assert.Equal(t, "b", removed.Title)
	assert.Equal(t, []string{"a"}, storedTitles(s))
}

func TestRemoveLast_EmptyStore(t *testing.T) {
	s := state.NewSession()

	_, ok := s.RemoveLast()

	assert.False(t, ok)
}

func TestSwapAdjacent_ExchangesNeighbours(t *testing.T) {
	s := seeded("a", "b", "c")

	require.True(t, s.SwapAdjacent(0, +1))
	assert.Equal(t, []string{"b", "a", "c"}, storedTitles(s))

	require.True(t, s.SwapAdjacent(2, -1))
	assert.Equal(t, []string{"b", "c", "a"}, storedTitles(s))
}

func TestSwapAdjacent_OutOfBoundsIsSilentNoOp(t *testing.T) {
	s := seeded("a", "b")

	assert.False(t, s.SwapAdjacent(0, -1))
	assert.False(t, s.SwapAdjacent(1, +1))
	assert.False(t, s.SwapAdjacent(5, +1))
	assert.Equal(t, []string{"a", "b"}, storedTitles(s))
}

func TestSwapAdjacent_RoundTripIsIdentity(t *testing.T) {
	s := seeded("a", "b", "c", "d")

	require.True(t, s.SwapAdjacent(2, -1))
	require.True(t, s.SwapAdjacent(1, +1))

	assert.Equal(t, []string{"a", "b", "c", "d"}, storedTitles(s))
}

func TestReplaceAll_SubstitutesSequence(t *testing.T) {
	s := seeded("a", "b")

	s.ReplaceAll([]domain.ItineraryItem{itemFixture("x")})

	assert.Equal(t, []string{"x"}, storedTitles(s))
}

func TestClearItems_Idempotent(t *testing.T) {
	s := seeded("a", "b", "c", "d", "e")

	s.ClearItems()
	assert.Empty(t, s.Items())

	s.ClearItems()
	assert.Empty(t, s.Items())
}

func TestIndexByID_And_ItemByID(t *testing.T) {
	s := state.NewSession()
	a, b := itemFixture("a"), itemFixture("b")
	s.AddItem(a)
	s.AddItem(b)

	assert.Equal(t, 0, s.IndexByID(a.ID))
	assert.Equal(t, 1, s.IndexByID(b.ID))
	assert.Equal(t, -1, s.IndexByID(uuid.New()))

	got, err := s.ItemByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)

	_, err = s.ItemByID(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- activity log ----------------------------------------------------------

func TestRecord_MostRecentFirst(t *testing.T) {
	s := state.NewSession()
	s.Record("first")
	s.Record("second")
	s.Record("third")

	assert.Equal(t, []string{"third", "second", "first"}, s.Activity(0))
}

func TestRecord_CapsAtThirty(t *testing.T) {
	s := state.NewSession()
	for i := 0; i < 40; i++ {
		s.Record(fmt.Sprintf("line %d", i))
	}

	all := s.Activity(0)
	require.Len(t, all, state.ActivityCap)
	// Newest survives, the ten oldest are gone.
	assert.Equal(t, "line 39", all[0])
	assert.Equal(t, "line 10", all[len(all)-1])
}

func TestActivity_LimitsResult(t *testing.T) {
	s := state.NewSession()
	for i := 0; i < 15; i++ {
		s.Record(fmt.Sprintf("line %d", i))
	}

	assert.Len(t, s.Activity(10), 10)
	assert.Len(t, s.Activity(100), 15)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mverstraete/tripdash/internal/derive"
	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/state"
)

// ItineraryService implements business logic for the itinerary item store.
// Items are addressed by their stable ID everywhere a derived (sorted or
// filtered) view is involved; positional primitives act on storage order.
type ItineraryService struct{}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService() *ItineraryService {
	return &ItineraryService{}
}

// newItem builds an item with a fresh ID, applying the input coercions:
// day below 1 becomes 1, negative cost becomes 0, empty category becomes
// "Other". Title and time are stored as given; a free-form time string is
// accepted without validation.
func newItem(day int, timeStr, title, category string, cost int, tags []string) domain.ItineraryItem {
	if day < 1 {
		day = 1
	}
	if cost < 0 {
		cost = 0
	}
	if tags == nil {
		tags = []string{}
	}
	return domain.ItineraryItem{
		ID:       uuid.New(),
		Day:      day,
		Time:     timeStr,
		Title:    title,
		Category: domain.NormalizeCategory(category),
		Cost:     cost,
		Tags:     tags,
	}
}

// List returns a projection of the item store: sorted by mode, then filtered
// to a single day when day is non-nil. The projection carries item
// IDs so callers can address rows back through the mutators.
func (s *ItineraryService) List(ctx context.Context, sess *state.Session, day *int, mode derive.SortMode) ([]domain.ItineraryItem, error) {
	items := derive.SortItems(sess.Items(), mode)
	if day != nil {
		items = derive.FilterByDay(items, *day)
	}
	return items, nil
}

// Add appends a new item to the end of the store and returns it along with
// the new item count.
func (s *ItineraryService) Add(ctx context.Context, sess *state.Session, day int, timeStr, title, category string, cost int, tags []string) (domain.ItineraryItem, int, error) {
	item := newItem(day, timeStr, title, category, cost, tags)
	count := sess.AddItem(item)
	sess.Record(fmt.Sprintf("Added: Day %d • %s • %s (€%d)", item.Day, item.Time, item.Title, item.Cost))
	return item, count, nil
}

// RemoveByID removes the item with the given ID.
// Returns domain.ErrNotFound when no item carries that ID.
func (s *ItineraryService) RemoveByID(ctx context.Context, sess *state.Session, id uuid.UUID) error {
	pos := sess.IndexByID(id)
	if pos < 0 {
		return fmt.Errorf("service.ItineraryService.RemoveByID: %w", domain.ErrNotFound)
	}
	removed, err := sess.RemoveAt(pos)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveByID: %w", err)
	}
	sess.Record(fmt.Sprintf("Removed: Day %d • %s", removed.Day, removed.Title))
	return nil
}

// RemoveAt removes the item at the given storage position.
// Returns domain.ErrOutOfRange (store unchanged) for positions outside
// [0, len); positional removal fails loudly, it never clamps.
func (s *ItineraryService) RemoveAt(ctx context.Context, sess *state.Session, pos int) error {
	removed, err := sess.RemoveAt(pos)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveAt: %w", err)
	}
	sess.Record(fmt.Sprintf("Removed: Day %d • %s", removed.Day, removed.Title))
	return nil
}

// RemoveLast removes the final item in storage order.
// Removing from an empty store is a silent no-op, matching the quick-tools
// behavior of the planner page.
func (s *ItineraryService) RemoveLast(ctx context.Context, sess *state.Session) error {
	removed, ok := sess.RemoveLast()
	if !ok {
		return nil
	}
	sess.Record(fmt.Sprintf("Removed last: %s", removed.Title))
	return nil
}

// Move swaps the item with the given ID one place up (direction -1) or down
// (direction +1) in storage order. A move past either boundary is a silent
// no-op. Returns domain.ErrValidation for any other direction value and
// domain.ErrNotFound when the ID does not resolve.
func (s *ItineraryService) Move(ctx context.Context, sess *state.Session, id uuid.UUID, direction int) error {
	if direction != -1 && direction != 1 {
		return fmt.Errorf("%w: direction must be -1 or +1", domain.ErrValidation)
	}
	pos := sess.IndexByID(id)
	if pos < 0 {
		return fmt.Errorf("service.ItineraryService.Move: %w", domain.ErrNotFound)
	}
	if !sess.SwapAdjacent(pos, direction) {
		return nil
	}
	word := "up"
	if direction == 1 {
		word = "down"
	}
	sess.Record(fmt.Sprintf("Moved item %s at position %d", word, pos))
	return nil
}

// SortAndCommit reorders the backing store itself: the items are sorted by
// mode and the result replaces the sequence atomically.
func (s *ItineraryService) SortAndCommit(ctx context.Context, sess *state.Session, mode derive.SortMode) ([]domain.ItineraryItem, error) {
	sorted := derive.SortItems(sess.Items(), mode)
	sess.ReplaceAll(sorted)
	sess.Record(fmt.Sprintf("Items sorted by %s.", mode))
	return sorted, nil
}

// ReplaceAll substitutes the whole item sequence. Incoming items without an
// ID are assigned one; the usual input coercions apply per item.
func (s *ItineraryService) ReplaceAll(ctx context.Context, sess *state.Session, items []domain.ItineraryItem) ([]domain.ItineraryItem, error) {
	replaced := make([]domain.ItineraryItem, len(items))
	for i, it := range items {
		n := newItem(it.Day, it.Time, it.Title, it.Category, it.Cost, it.Tags)
		if it.ID != uuid.Nil {
			n.ID = it.ID
		}
		replaced[i] = n
	}
	sess.ReplaceAll(replaced)
	sess.Record(fmt.Sprintf("Replaced itinerary with %d item(s).", len(replaced)))
	return replaced, nil
}

// Clear empties the item store. Idempotent: clearing an empty store is
// fine and still logged.
func (s *ItineraryService) Clear(ctx context.Context, sess *state.Session) error {
	sess.ClearItems()
	sess.Record("Cleared all itinerary items.")
	return nil
}

// Templates returns the fixed starter-activity catalog.
func (s *ItineraryService) Templates(ctx context.Context) ([]domain.Template, error) {
	return domain.Templates(), nil
}

// Package state holds the mutable, session-scoped stores: the trip profile,
// the ordered itinerary item sequence, and the bounded activity log.
// The whole model is in-memory and lives exactly as long as the process.
//
// Every accessor returns copies. The only way to change state is through the
// mutating methods, each of which is atomic under the session's mutex.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mverstraete/tripdash/internal/domain"
)

// ActivityCap is the maximum number of retained activity log lines.
// Older lines are silently dropped past the cap.
const ActivityCap = 30

// Session is one user's complete planner state. A Session must never be
// shared across logical sessions; the Registry hands out an independent
// instance per session ID.
type Session struct {
	mu       sync.Mutex
	profile  domain.TripProfile
	items    []domain.ItineraryItem
	activity []string
}

// NewSession returns a session initialized with the default profile,
// no items, and an empty activity log.
func NewSession() *Session {
	return &Session{
		profile: domain.DefaultProfile(time.Now().UTC()),
		items:   []domain.ItineraryItem{},
	}
}

func (s *Session) lock()   { s.mu.Lock() }
func (s *Session) unlock() { s.mu.Unlock() }

// --- profile ----------------------------------------------------------------

// Profile returns a copy of the trip profile.
func (s *Session) Profile() domain.TripProfile {
	s.lock()
	defer s.unlock()
	return copyProfile(s.profile)
}

// SetProfile replaces every profile field atomically. There is no
// partial-update path.
func (s *Session) SetProfile(p domain.TripProfile) {
	s.lock()
	defer s.unlock()
	s.profile = copyProfile(p)
}

// Reset restores the default profile and clears the item sequence.
// The activity log is kept; resets are themselves logged by the caller.
func (s *Session) Reset() {
	s.lock()
	defer s.unlock()
	s.profile = domain.DefaultProfile(time.Now().UTC())
	s.items = []domain.ItineraryItem{}
}

// --- item store -------------------------------------------------------------

// Items returns a copy of the item sequence in storage order.
func (s *Session) Items() []domain.ItineraryItem {
	s.lock()
	defer s.unlock()
	return copyItems(s.items)
}

// Len returns the current number of items.
func (s *Session) Len() int {
	s.lock()
	defer s.unlock()
	return len(s.items)
}

// AddItem appends the item to the end of the sequence and returns the new
// count. No duplicate detection is performed.
func (s *Session) AddItem(item domain.ItineraryItem) int {
	s.lock()
	defer s.unlock()
	s.items = append(s.items, copyItem(item))
	return len(s.items)
}

// RemoveAt removes the item at pos, shifting all later items down by one.
// Returns the removed item, or domain.ErrOutOfRange (store unchanged) when
// pos is outside [0, len).
func (s *Session) RemoveAt(pos int) (domain.ItineraryItem, error) {
	s.lock()
	defer s.unlock()
	if pos < 0 || pos >= len(s.items) {
		return domain.ItineraryItem{}, domain.ErrOutOfRange
	}
	removed := s.items[pos]
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return removed, nil
}

// RemoveLast removes and returns the final item. The second return is false
// when the sequence is empty.
func (s *Session) RemoveLast() (domain.ItineraryItem, bool) {
	s.lock()
	defer s.unlock()
	if len(s.items) == 0 {
		return domain.ItineraryItem{}, false
	}
	removed := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return removed, true
}

// SwapAdjacent exchanges the items at pos and pos+direction, where direction
// is -1 or +1. When the target position falls outside the sequence the call
// is a silent no-op, by contract. Returns whether a swap happened.
func (s *Session) SwapAdjacent(pos, direction int) bool {
	s.lock()
	defer s.unlock()
	target := pos + direction
	if pos < 0 || pos >= len(s.items) || target < 0 || target >= len(s.items) {
		return false
	}
	s.items[pos], s.items[target] = s.items[target], s.items[pos]
	return true
}

// ReplaceAll atomically substitutes the entire sequence. Used to commit a
// sorted projection back to storage.
func (s *Session) ReplaceAll(items []domain.ItineraryItem) {
	s.lock()
	defer s.unlock()
	s.items = copyItems(items)
}

// ClearItems empties the sequence. Idempotent.
func (s *Session) ClearItems() {
	s.lock()
	defer s.unlock()
	s.items = []domain.ItineraryItem{}
}

// IndexByID returns the storage position of the item with the given ID,
// or -1 when no such item exists.
func (s *Session) IndexByID(id uuid.UUID) int {
	s.lock()
	defer s.unlock()
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ItemByID returns a copy of the item with the given ID.
// Returns domain.ErrNotFound when no item carries that ID.
func (s *Session) ItemByID(id uuid.UUID) (domain.ItineraryItem, error) {
	s.lock()
	defer s.unlock()
	for _, it := range s.items {
		if it.ID == id {
			return copyItem(it), nil
		}
	}
	return domain.ItineraryItem{}, domain.ErrNotFound
}

// --- activity log -----------------------------------------------------------

// Record inserts msg at the front of the activity log (most-recent-first)
// and truncates to ActivityCap entries.
func (s *Session) Record(msg string) {
	s.lock()
	defer s.unlock()
	s.activity = append([]string{msg}, s.activity...)
	if len(s.activity) > ActivityCap {
		s.activity = s.activity[:ActivityCap]
	}
}

// Activity returns up to n log lines, most recent first.
// n <= 0 returns the whole retained log.
func (s *Session) Activity(n int) []string {
	s.lock()
	defer s.unlock()
	if n <= 0 || n > len(s.activity) {
		n = len(s.activity)
	}
	out := make([]string, n)
	copy(out, s.activity[:n])
	return out
}

// --- copy helpers -----------------------------------------------------------

func copyProfile(p domain.TripProfile) domain.TripProfile {
	out := p
	out.Interests = append([]string{}, p.Interests...)
	return out
}

func copyItem(it domain.ItineraryItem) domain.ItineraryItem {
	out := it
	out.Tags = append([]string{}, it.Tags...)
	return out
}

func copyItems(items []domain.ItineraryItem) []domain.ItineraryItem {
	out := make([]domain.ItineraryItem, len(items))
	for i, it := range items {
		out[i] = copyItem(it)
	}
	return out
}

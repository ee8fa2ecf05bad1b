package models

import (
	"sync"
	"time"
)

// ItemDraft is an in-progress edit of a single item: a snapshot of the item's
// fields taken when editing began, with the image field already parsed into
// its ordered list. The captured Version travels with the draft so a commit
// against an item that changed in the meantime surfaces as a conflict.
type ItemDraft struct {
	ItemID       uint       `json:"item_id"`
	Name         string     `json:"name"`
	SubCategory  string     `json:"sub_category"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Status       ItemStatus `json:"status"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
	Images       ImageList  `json:"images"`
	Price        *float64   `json:"price"`
	Quantity     int        `json:"quantity"`
	PurchaseDate *time.Time `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Condition    *int       `json:"condition"`
	Tags         string     `json:"tags"`
	CategoryID   *uint      `json:"category_id"`
	Version      int        `json:"version"`
	StartedAt    time.Time  `json:"started_at"`
}

// NewItemDraft snapshots an item into a draft.
func NewItemDraft(item *Item) *ItemDraft {
	return &ItemDraft{
		ItemID:       item.ID,
		Name:         item.Name,
		SubCategory:  item.SubCategory,
		Brand:        item.Brand,
		Model:        item.Model,
		Status:       item.Status,
		Location:     item.Location,
		Notes:        item.Notes,
		Images:       item.Images(),
		Price:        item.Price,
		Quantity:     item.Quantity,
		PurchaseDate: item.PurchaseDate,
		ExpiryDate:   item.ExpiryDate,
		Condition:    item.Condition,
		Tags:         item.Tags,
		CategoryID:   item.CategoryID,
		Version:      item.Version,
		StartedAt:    time.Now(),
	}
}

// ApplyTo copies the draft's fields onto an item, re-encoding the image list.
// The item's identity, timestamps and version are left alone.
func (d *ItemDraft) ApplyTo(item *Item) {
	item.Name = d.Name
	item.SubCategory = d.SubCategory
	item.Brand = d.Brand
	item.Model = d.Model
	item.Status = d.Status
	item.Location = d.Location
	item.Notes = d.Notes
	item.SetImages(d.Images)
	item.Price = d.Price
	item.Quantity = d.Quantity
	item.PurchaseDate = d.PurchaseDate
	item.ExpiryDate = d.ExpiryDate
	item.Condition = d.Condition
	item.Tags = d.Tags
	item.CategoryID = d.CategoryID
}

func (d *ItemDraft) clone() *ItemDraft {
	copied := *d
	copied.Images = append(ImageList{}, d.Images...)
	return &copied
}

// DraftStore keeps at most one item draft per session. Starting an edit while
// another draft exists in the same session replaces it, which is what gives
// the list view its "one row in edit mode at a time" behavior.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*ItemDraft
}

// NewDraftStore returns an empty draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*ItemDraft)}
}

// Start begins editing an item in the given session, discarding any draft the
// session already held. It returns a snapshot of the new draft.
func (s *DraftStore) Start(sessionID string, item *Item) *ItemDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := NewItemDraft(item)
	s.drafts[sessionID] = draft
	return draft.clone()
}

// Get returns a snapshot of the session's draft, if one exists.
func (s *DraftStore) Get(sessionID string) (*ItemDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, false
	}
	return draft.clone(), true
}

// Cancel discards the session's draft. Cancelling a session with no draft is
// harmless.
func (s *DraftStore) Cancel(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// AddImages appends uploaded references to the draft's image list.
func (s *DraftStore) AddImages(sessionID string, refs ...string) (*ItemDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	if err := draft.Images.Append(refs...); err != nil {
		return nil, err
	}
	return draft.clone(), nil
}

// RemoveImage drops the image at index from the draft. Out-of-range indices
// leave the draft unchanged.
func (s *DraftStore) RemoveImage(sessionID string, index int) (*ItemDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	draft.Images.Remove(index)
	return draft.clone(), nil
}

// MoveImage reorders the draft's image list. Invalid indices leave the draft
// unchanged.
func (s *DraftStore) MoveImage(sessionID string, from, to int) (*ItemDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	draft.Images.Move(from, to)
	return draft.clone(), nil
}

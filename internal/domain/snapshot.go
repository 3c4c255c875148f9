package domain

import "strings"

// WordSlot is one position in the word display
type WordSlot struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Hidden bool   `json:"hidden"`
}

// Cell lays the slot out as its word followed by a single space. A hidden
// slot shows mask(word) instead so it keeps its place; a nil mask blanks it
// with spaces of the same byte length.
func (s WordSlot) Cell(mask func(word string) string) string {
	if !s.Hidden {
		return s.Text + WordDelimiter
	}
	if mask == nil {
		return strings.Repeat(" ", len(s.Text)) + WordDelimiter
	}
	return mask(s.Text) + WordDelimiter
}

// Snapshot is a read-only view of a drill for rendering
type Snapshot struct {
	ID           string     `json:"id"`
	Phase        Phase      `json:"phase"`
	Text         string     `json:"text"`
	Words        []WordSlot `json:"words"`
	HiddenCount  int        `json:"hiddenCount"`
	VisibleCount int        `json:"visibleCount"`
	RemoveCount  int        `json:"removeCount"`
	Complete     bool       `json:"complete"`
	CanEdit      bool       `json:"canEdit"`
	CanStart     bool       `json:"canStart"`
	CanHide      bool       `json:"canHide"`
	CanStartOver bool       `json:"canStartOver"`
}

// Snapshot returns the current state of the drill as a Snapshot
func (d *Drill) Snapshot() Snapshot {
	slots := make([]WordSlot, len(d.Words))
	for i, word := range d.Words {
		slots[i] = WordSlot{
			Index:  i,
			Text:   word,
			Hidden: d.Hidden.Has(i),
		}
	}

	hidden := d.Hidden.Len()
	active := d.Phase == PhaseActive

	return Snapshot{
		ID:           d.ID,
		Phase:        d.Phase,
		Text:         d.Text,
		Words:        slots,
		HiddenCount:  hidden,
		VisibleCount: len(d.Words) - hidden,
		RemoveCount:  d.RemoveCount,
		Complete:     d.IsComplete(),
		CanEdit:      !active,
		CanStart:     !active,
		CanHide:      active && len(d.Words) > 0,
		CanStartOver: active,
	}
}

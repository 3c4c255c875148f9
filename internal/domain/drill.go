package domain

import "time"

// Drill is the state of one memorisation exercise: the text being learned,
// the words split out of it, which of those words are hidden, how many words
// each hiding step removes, and the current phase. Snapshot is its wire form.
type Drill struct {
	ID          string
	Text        string
	Words       []string
	Hidden      HiddenSet
	RemoveCount int
	Phase       Phase
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// MaxTextBytes bounds the length of Text; zero means no limit
	MaxTextBytes int64
}

// NewDrill creates a new drill with the given ID
func NewDrill(id string) *Drill {
	now := time.Now()
	return &Drill{
		ID:          id,
		Text:        "",
		Words:       []string{},
		Hidden:      HiddenSet{},
		RemoveCount: DefaultRemoveCount,
		Phase:       PhaseSetup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetText replaces the text, re-splits it into words and unhides everything
func (d *Drill) SetText(text string) error {
	if d.Phase != PhaseSetup {
		return ErrInputFrozen
	}
	if d.MaxTextBytes > 0 && int64(len(text)) > d.MaxTextBytes {
		return ErrTextTooLong
	}

	d.Text = text
	d.Words = SplitWords(text)
	d.Hidden = HiddenSet{}
	d.touch()

	return nil
}

// SetRemoveCount parses raw as the number of words to hide per step and
// returns the value that was stored
func (d *Drill) SetRemoveCount(raw string) (int, error) {
	if err := d.SetRemoveCountValue(ParseRemoveCount(raw)); err != nil {
		return d.RemoveCount, err
	}
	return d.RemoveCount, nil
}

// SetRemoveCountValue stores n (clamped to at least 1) as the number of words
// to hide per step
func (d *Drill) SetRemoveCountValue(n int) error {
	if d.Phase != PhaseSetup {
		return ErrInputFrozen
	}

	d.RemoveCount = ClampRemoveCount(n)
	d.touch()

	return nil
}

// Start begins the recall phase with every word visible. The text may be
// empty; hiding then has nothing to do.
func (d *Drill) Start() error {
	if !d.Phase.CanTransitionTo(PhaseActive) {
		return ErrAlreadyStarted
	}

	d.Phase = PhaseActive
	d.Hidden = HiddenSet{}
	d.touch()

	return nil
}

// HideWords hides up to RemoveCount more words and returns how many were
// newly hidden. Once every word is hidden it does nothing.
func (d *Drill) HideWords(rng Intner) (int, error) {
	if d.Phase != PhaseActive {
		return 0, ErrNotStarted
	}

	if len(d.Words) == 0 {
		return 0, nil
	}

	before := d.Hidden.Len()
	d.Hidden = HideRandom(d.Hidden, len(d.Words), d.RemoveCount, rng)
	added := d.Hidden.Len() - before
	if added > 0 {
		d.touch()
	}

	return added, nil
}

// Reset clears the text, words and hidden set, restores the default count
// and returns to setup. Calling it again changes nothing.
func (d *Drill) Reset() {
	d.Text = ""
	d.Words = []string{}
	d.Hidden = HiddenSet{}
	d.RemoveCount = DefaultRemoveCount
	d.Phase = PhaseSetup
	d.touch()
}

// IsComplete reports whether every word of a non-empty text is hidden
func (d *Drill) IsComplete() bool {
	return len(d.Words) > 0 && d.Hidden.Len() >= len(d.Words)
}

func (d *Drill) touch() {
	d.UpdatedAt = time.Now()
}

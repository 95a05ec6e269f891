package client

import (
	"context"
	"strings"
	"sync"
)

const (
	TypingText = "Detective Oracle is thinking..."
	Apology    = "Sorry, I encountered an error. Please try again later."
)

type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

type Entry struct {
	Author Author
	Text   string // rendered, newlines already converted to <br>
}

type EventKind int

const (
	EntryAdded EventKind = iota
	TypingShown
	TypingRemoved
)

type Event struct {
	Kind  EventKind
	Entry Entry // set for EntryAdded
}

type asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Transcript is the ordered list of rendered messages plus the typing indicator.
type Transcript struct {
	asker    asker
	observer func(Event)
	onError  func(error)

	mu      sync.Mutex
	entries []Entry
	typing  bool
}

type Option func(*Transcript)

// WithObserver receives every change to the transcript in order.
func WithObserver(fn func(Event)) Option {
	return func(t *Transcript) { t.observer = fn }
}

// WithErrorHandler sees the underlying failure the user is shielded from.
func WithErrorHandler(fn func(error)) Option {
	return func(t *Transcript) { t.onError = fn }
}

func NewTranscript(a asker, opts ...Option) *Transcript {
	t := &Transcript{asker: a}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send posts text and appends the user's message followed by exactly one bot message.
// Blank input is ignored. Failures become the fixed apology.
func (t *Transcript) Send(ctx context.Context, text string) {
	message := strings.TrimSpace(text)
	if message == "" {
		return
	}

	t.add(Entry{Author: AuthorUser, Text: RenderHTML(message)})
	t.setTyping(true)

	reply, err := t.asker.Ask(ctx, message)
	t.setTyping(false)

	if err != nil {
		if t.onError != nil {
			t.onError(err)
		}
		t.add(Entry{Author: AuthorBot, Text: Apology})
		return
	}
	t.add(Entry{Author: AuthorBot, Text: RenderHTML(CleanReply(reply))})
}

func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

func (t *Transcript) Typing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.typing
}

func (t *Transcript) add(e Entry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
	t.emit(Event{Kind: EntryAdded, Entry: e})
}

func (t *Transcript) setTyping(on bool) {
	t.mu.Lock()
	changed := t.typing != on
	t.typing = on
	t.mu.Unlock()

	if !changed {
		return
	}
	if on {
		t.emit(Event{Kind: TypingShown})
	} else {
		t.emit(Event{Kind: TypingRemoved})
	}
}

func (t *Transcript) emit(e Event) {
	if t.observer != nil {
		t.observer(e)
	}
}

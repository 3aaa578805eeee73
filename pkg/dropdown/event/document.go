package event

import "sync"

// Handler receives document clicks.
type Handler func(Event)

// Document is a subscribable stream of clicks that landed anywhere on screen.
// The host program dispatches every mouse press to it after the widget under
// the pointer has handled the press.
type Document struct {
	mu     sync.Mutex
	nextID uint64
	ids    []uint64
	subs   map[uint64]Handler
}

// Default is the process-wide document used when a dropdown is not given one.
var Default = NewDocument()

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{subs: make(map[uint64]Handler)}
}

// Subscribe registers h. Handlers run in subscription order.
func (d *Document) Subscribe(h Handler) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.ids = append(d.ids, id)
	d.subs[id] = h
	return &Subscription{doc: d, id: id}
}

// Dispatch delivers ev to every current subscriber. Handlers may unsubscribe
// themselves or others during delivery.
func (d *Document) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := make([]uint64, len(d.ids))
	copy(snapshot, d.ids)
	d.mu.Unlock()

	for _, id := range snapshot {
		d.mu.Lock()
		h, ok := d.subs[id]
		d.mu.Unlock()
		if ok {
			h(ev)
		}
	}
}

// Len returns the number of live subscriptions.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

func (d *Document) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.subs[id]; !ok {
		return
	}
	delete(d.subs, id)
	for i, v := range d.ids {
		if v == id {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			break
		}
	}
}

// Subscription is one registration on a Document.
type Subscription struct {
	doc  *Document
	id   uint64
	once sync.Once
}

// Unsubscribe removes the handler. Calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() { s.doc.remove(s.id) })
}

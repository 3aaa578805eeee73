package dropdown

import (
	"testing"

	"github.com/marcus/selectme/pkg/dropdown/event"
)

func TestToggleRunsHooksInOrder(t *testing.T) {
	var calls []string
	var d *Dropdown
	d = newTestDropdown(t, Config{
		Options: abOptions(),
		Hooks: Hooks{
			BeforeOpen: func(ev event.Event) Verdict {
				if d.IsOpen() {
					t.Error("BeforeOpen ran after the state changed")
				}
				if ev.Kind != event.KindClick {
					t.Errorf("BeforeOpen got %v, want click", ev.Kind)
				}
				calls = append(calls, "beforeOpen")
				return Proceed
			},
			OnOpen: func() {
				if !d.IsOpen() {
					t.Error("OnOpen ran before the state changed")
				}
				calls = append(calls, "onOpen")
			},
			BeforeClose: func(event.Event) Verdict {
				calls = append(calls, "beforeClose")
				return Proceed
			},
			OnClose: func() { calls = append(calls, "onClose") },
		},
	})

	if !d.Toggle(event.Click(1, 1)) {
		t.Fatal("toggle did not open")
	}
	d.RequestGlobalClose(event.Click(1, 1)) // consumes the skip guard
	if !d.Toggle(event.Click(1, 1)) {
		t.Fatal("toggle did not close")
	}

	want := []string{"beforeOpen", "onOpen", "beforeClose", "onClose"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestToggleVeto(t *testing.T) {
	opened := false
	d := newTestDropdown(t, Config{
		Options: abOptions(),
		Hooks: Hooks{
			BeforeOpen: func(event.Event) Verdict { return Veto },
			OnOpen:     func() { opened = true },
		},
	})

	if d.Toggle(event.Click(0, 0)) {
		t.Error("vetoed toggle reported a change")
	}
	if d.IsOpen() || opened {
		t.Error("vetoed toggle opened the list")
	}
	if d.SkipArmed() {
		t.Error("vetoed toggle armed the skip guard")
	}
}

func TestToggleOnlyVetoStops(t *testing.T) {
	for _, v := range []Verdict{Proceed, Allow} {
		d := newTestDropdown(t, Config{
			Options: abOptions(),
			Hooks:   Hooks{BeforeOpen: func(event.Event) Verdict { return v }},
		})
		if !d.Toggle(event.Program) || !d.IsOpen() {
			t.Errorf("verdict %d blocked the toggle", v)
		}
	}
}

func TestToggleIgnoredWhileSkipArmed(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions()})
	d.MarkSkipPropagation()
	if d.Toggle(event.Click(0, 0)) {
		t.Error("click toggle ran with the skip guard armed")
	}
	if d.IsOpen() {
		t.Error("list opened")
	}
}

func TestProgramToggleLeavesSkipClear(t *testing.T) {
	doc := event.NewDocument()
	d := newTestDropdown(t, Config{Options: abOptions(), Document: doc})

	d.Toggle(event.Program)
	if d.SkipArmed() {
		t.Fatal("programmatic toggle armed the skip guard")
	}
	if !d.Toggle(event.Program) || d.IsOpen() {
		t.Fatal("second programmatic toggle did not close the list")
	}

	d.Toggle(event.Program)
	doc.Dispatch(event.Click(50, 50))
	if d.IsOpen() {
		t.Error("first outside click did not close the list")
	}
}

func TestRequestGlobalClose(t *testing.T) {
	t.Run("closes open list", func(t *testing.T) {
		closed := false
		d := newTestDropdown(t, Config{
			Options: abOptions(),
			Hooks:   Hooks{OnClose: func() { closed = true }},
		})
		d.Toggle(event.Click(1, 1))
		d.RequestGlobalClose(event.Click(1, 1)) // same click
		if !d.IsOpen() {
			t.Fatal("the opening click closed the list")
		}
		d.RequestGlobalClose(event.Click(50, 50))
		if d.IsOpen() || !closed {
			t.Error("outside click did not close the list")
		}
	})

	t.Run("skip guard consumed once", func(t *testing.T) {
		d := newTestDropdown(t, Config{Options: abOptions()})
		d.Toggle(event.Click(1, 1))
		d.RequestGlobalClose(event.Click(1, 1))
		if d.SkipArmed() {
			t.Error("skip guard still armed")
		}
	})

	t.Run("no-op when closed", func(t *testing.T) {
		beforeClose := false
		d := newTestDropdown(t, Config{
			Options: abOptions(),
			Hooks: Hooks{BeforeClose: func(event.Event) Verdict {
				beforeClose = true
				return Proceed
			}},
		})
		d.RequestGlobalClose(event.Program)
		if d.IsOpen() || beforeClose {
			t.Error("closed widget reacted to the click")
		}
	})

	t.Run("veto keeps open", func(t *testing.T) {
		d := newTestDropdown(t, Config{
			Options: abOptions(),
			Hooks:   Hooks{BeforeClose: func(event.Event) Verdict { return Veto }},
		})
		d.Toggle(event.Program)
		d.RequestGlobalClose(event.Program)
		d.RequestGlobalClose(event.Program)
		if !d.IsOpen() {
			t.Error("vetoed close closed the list")
		}
	})

	t.Run("marked skip swallows one close", func(t *testing.T) {
		d := newTestDropdown(t, Config{Options: abOptions()})
		d.Toggle(event.Program)

		d.MarkSkipPropagation()
		d.RequestGlobalClose(event.Program)
		if !d.IsOpen() {
			t.Error("close ran with the skip guard armed")
		}
		d.RequestGlobalClose(event.Program)
		if d.IsOpen() {
			t.Error("second click did not close")
		}
	})
}

func TestControlledOpenState(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions(), IsOpened: ptr(true)})
	if !d.IsOpen() || !d.Controlled() {
		t.Fatal("controlled widget did not start open")
	}

	d.RequestGlobalClose(event.Program)
	if !d.IsOpen() {
		t.Error("document click closed a controlled widget")
	}
	if d.Toggle(event.Program) {
		t.Error("toggle changed state matching the controlled value")
	}

	d.SetOpened(ptr(false))
	if d.IsOpen() {
		t.Error("SetOpened(false) did not close")
	}

	d.SetOpened(nil)
	if d.Controlled() {
		t.Error("SetOpened(nil) left the widget controlled")
	}
	if !d.Toggle(event.Program) || !d.IsOpen() {
		t.Error("uncontrolled toggle did not open")
	}
}

func TestControlledStateSkipsHooks(t *testing.T) {
	hooked := false
	d := newTestDropdown(t, Config{
		Options: abOptions(),
		Hooks: Hooks{
			OnOpen:  func() { hooked = true },
			OnClose: func() { hooked = true },
		},
	})
	d.SetOpened(ptr(true))
	d.SetOpened(ptr(false))
	if hooked {
		t.Error("SetOpened ran completion hooks")
	}
}

func TestMountIdempotent(t *testing.T) {
	doc := event.NewDocument()
	d := New(Config{Options: abOptions(), Document: doc, Logger: quietLogger()})

	d.Mount()
	d.Mount()
	if doc.Len() != 1 {
		t.Errorf("subscriptions = %d, want 1", doc.Len())
	}
	d.Unmount()
	d.Unmount()
	if doc.Len() != 0 || d.Mounted() {
		t.Errorf("subscriptions = %d after unmount, want 0", doc.Len())
	}
}

func TestUnmountedIgnoresDocument(t *testing.T) {
	doc := event.NewDocument()
	d := New(Config{Options: abOptions(), Document: doc, Logger: quietLogger()})
	d.Mount()
	d.Toggle(event.Program)
	d.Unmount()

	doc.Dispatch(event.Click(9, 9))
	if !d.IsOpen() {
		t.Error("unmounted widget closed on a document click")
	}
}

// Two widgets share one document; opening B must close A and leave B open.
func TestOpeningOneClosesTheOther(t *testing.T) {
	doc := event.NewDocument()
	a := newTestDropdown(t, Config{ID: "a", Options: abOptions(), Document: doc})
	b := newTestDropdown(t, Config{ID: "b", Options: abOptions(), Document: doc})

	click := event.Click(1, 0)
	a.Toggle(click)
	doc.Dispatch(click)
	if !a.IsOpen() {
		t.Fatal("A did not stay open after its own click")
	}

	click = event.Click(40, 0)
	b.Toggle(click)
	doc.Dispatch(click)
	if a.IsOpen() {
		t.Error("A still open after B was clicked")
	}
	if !b.IsOpen() {
		t.Error("B closed by its own click")
	}
}

func TestFocusOpensSearchable(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions(), Searchable: true})
	d.Focus()
	if !d.IsOpen() {
		t.Fatal("focus did not open a searchable widget")
	}
	if d.SkipArmed() {
		t.Error("focus left the skip guard armed")
	}

	d.Blur()
	if d.Focused() {
		t.Error("blur kept focus")
	}
}

func TestFocusKeepsPlainClosed(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions()})
	d.Focus()
	if d.IsOpen() {
		t.Error("focus opened a non-searchable widget")
	}
}

func TestOpenHighlightsFirstSelected(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions(), Value: 3})
	d.Toggle(event.Program)
	if d.Highlighted() != 2 {
		t.Errorf("highlight = %d, want 2", d.Highlighted())
	}
}

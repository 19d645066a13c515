package core

import "testing"

type testController struct {
	disposed bool
}

func (c *testController) Dispose() { c.disposed = true }

func TestUseController_DisposesWithState(t *testing.T) {
	var controller *testController
	state := &testState{}
	widget := testStatefulWidget{createStateFn: func() State {
		controller = UseController(state, func() *testController {
			return &testController{}
		})
		return state
	}}

	owner := NewBuildOwner()
	element := NewStatefulElement(widget, owner)
	element.Mount(nil, nil)

	if controller == nil {
		t.Fatal("expected controller to be created")
	}
	if controller.disposed {
		t.Fatal("controller should not be disposed while mounted")
	}

	element.Unmount()
	if !controller.disposed {
		t.Error("controller should be disposed on unmount")
	}
}

func TestUseListenable_RebuildsOnNotify(t *testing.T) {
	notifier := NewNotifier()
	state := &testState{}
	widget := testStatefulWidget{createStateFn: func() State {
		UseListenable(state, notifier)
		return state
	}}

	owner := NewBuildOwner()
	element := NewStatefulElement(widget, owner)
	element.Mount(nil, nil)

	notifier.Notify()
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected rebuild after notify, got %d builds", state.builds)
	}

	element.Unmount()
	if notifier.ListenerCount() != 0 {
		t.Errorf("expected listener removed on dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseObservable_RebuildsOnChangeAndUnsubscribesOnDispose(t *testing.T) {
	obs := NewObservable(0)
	state := &testState{}
	widget := testStatefulWidget{createStateFn: func() State {
		UseObservable(state, obs)
		return state
	}}

	owner := NewBuildOwner()
	element := NewStatefulElement(widget, owner)
	element.Mount(nil, nil)

	obs.Set(1)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected rebuild after change, got %d builds", state.builds)
	}

	// No change, no rebuild.
	obs.Set(1)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected no rebuild for equal value, got %d builds", state.builds)
	}

	element.Unmount()
	if obs.ListenerCount() != 0 {
		t.Errorf("expected listener removed on dispose, got %d", obs.ListenerCount())
	}

	// A late change must not crash or rebuild the torn-down state.
	obs.Set(2)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected no rebuild after unmount, got %d builds", state.builds)
	}
}

func TestManaged_SetAndUpdateTriggerRebuild(t *testing.T) {
	state := &testState{}
	var count *Managed[int]
	widget := testStatefulWidget{createStateFn: func() State {
		count = NewManaged(state, 10)
		return state
	}}

	owner := NewBuildOwner()
	element := NewStatefulElement(widget, owner)
	element.Mount(nil, nil)
	defer element.Unmount()

	if count.Value() != 10 {
		t.Fatalf("initial value = %d, want 10", count.Value())
	}

	count.Set(11)
	owner.FlushBuild()
	if count.Value() != 11 || state.builds != 2 {
		t.Errorf("after Set: value=%d builds=%d, want 11 and 2", count.Value(), state.builds)
	}

	count.Update(func(v int) int { return v * 2 })
	owner.FlushBuild()
	if count.Value() != 22 || state.builds != 3 {
		t.Errorf("after Update: value=%d builds=%d, want 22 and 3", count.Value(), state.builds)
	}
}

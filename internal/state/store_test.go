package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/alertface/internal/appmsg"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(&appmsg.CompanionStatus{Running: true, Alerts: 4}, nil)

	snap := s.Snapshot()
	if !snap.HasStatus || snap.Status.Alerts != 4 || !snap.Status.Running {
		t.Fatalf("snapshot status = %#v, want running alerts=4", snap.Status)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_UpdateErrorKeepsPreviousStatus(t *testing.T) {
	var s Store

	s.Update(&appmsg.CompanionStatus{Running: true, Alerts: 1}, nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasStatus != prev.HasStatus || snap.Status.Alerts != prev.Status.Alerts {
		t.Fatalf("status changed on error: got %#v want %#v", snap.Status, prev.Status)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_NilStatusClearsHasStatus(t *testing.T) {
	var s Store
	s.Update(&appmsg.CompanionStatus{Running: true}, nil)
	s.Update(nil, nil)
	if snap := s.Snapshot(); snap.HasStatus {
		t.Fatalf("HasStatus = true after nil status update")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("zero store: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(&appmsg.CompanionStatus{Running: true}, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

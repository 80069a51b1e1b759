package domain

import (
	"testing"
	"time"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCancelled, false},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{BookingStatus("bogus"), StatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Error("pending must not be terminal")
	}
	if !StatusConfirmed.IsTerminal() {
		t.Error("confirmed must be terminal")
	}
	if !StatusCancelled.IsTerminal() {
		t.Error("cancelled must be terminal")
	}
}

func TestNights(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	if n := Nights(start, start.AddDate(0, 0, 3)); n != 3 {
		t.Errorf("3-day range: got %d nights", n)
	}
	if n := Nights(start, start); n != 0 {
		t.Errorf("empty range: got %d nights", n)
	}
	if n := Nights(start, start.AddDate(0, 0, -1)); n != 0 {
		t.Errorf("inverted range: got %d nights", n)
	}
	// A partial trailing day counts as a full night.
	if n := Nights(start, start.Add(36*time.Hour)); n != 2 {
		t.Errorf("36h range: got %d nights", n)
	}
}

func TestTotalPrice(t *testing.T) {
	if got := TotalPrice(150.00, 3); got != 450.00 {
		t.Errorf("got %v, want 450.00", got)
	}
	if got := TotalPrice(99.99, 2); got != 199.98 {
		t.Errorf("got %v, want 199.98", got)
	}
}

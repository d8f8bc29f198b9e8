package model

import "testing"

func TestCanTransition_LeadFunnel(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusNewLead, StatusLead, true},
		{StatusNewLead, StatusHotLead, true},
		{StatusNewLead, StatusNotInterested, true},
		{StatusNewLead, StatusCompleted, false},
		{StatusLead, StatusPaid, true},
		{StatusLead, StatusExpired, true},
		{StatusHotLead, StatusPaid, true},
		{StatusHotLead, StatusLead, false},
		{StatusNotInterested, StatusLead, true},
		{StatusNotInterested, StatusPaid, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestCanTransition_CheckoutFlow(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReviewed, false},
		{StatusPaid, StatusReviewed, true},
		{StatusReviewed, StatusCompleted, true},
		{StatusPaid, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	terminal := []OrderStatus{StatusCompleted, StatusCancelled, StatusExpired}
	targets := []OrderStatus{StatusNewLead, StatusLead, StatusPending, StatusPaid, StatusReviewed}

	for _, from := range terminal {
		for _, to := range targets {
			if CanTransition(from, to) {
				t.Errorf("Expected terminal state %s to reject transition to %s", from, to)
			}
		}
	}
}

func TestCanTransition_SameStatusIsIdempotent(t *testing.T) {
	for status := range orderStatuses {
		if !CanTransition(status, status) {
			t.Errorf("Expected %s -> %s to be allowed", status, status)
		}
	}
}

func TestCanTransition_RejectsUnknownStatus(t *testing.T) {
	if CanTransition("SHIPPED", StatusPaid) {
		t.Error("Expected unknown source status to be rejected")
	}
	if CanTransition(StatusLead, "SHIPPED") {
		t.Error("Expected unknown target status to be rejected")
	}
}

func TestStaleLeadStatuses(t *testing.T) {
	stale := StaleLeadStatuses()
	if len(stale) != 3 {
		t.Fatalf("Expected 3 stale lead statuses, got %d", len(stale))
	}

	for _, status := range stale {
		if status == StatusNewLead {
			t.Error("Expected NEW_LEAD to be excluded from the expiry sweep")
		}
		if status == StatusPending || status == StatusPaid {
			t.Errorf("Expected checkout status %s to be excluded from the expiry sweep", status)
		}
	}
}

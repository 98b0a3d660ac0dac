package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs_MatchesKind(t *testing.T) {
	err := fmt.Errorf("add: %w", InsufficientStock(3))

	if !errors.Is(err, ErrInsufficientStock) {
		t.Error("expected wrapped error to match ErrInsufficientStock")
	}
	if errors.Is(err, ErrProductNotFound) {
		t.Error("expected no match against a different kind")
	}
	if KindOf(err) != KindInsufficientStock {
		t.Errorf("expected kind %s, got %s", KindInsufficientStock, KindOf(err))
	}
}

func TestTransactionFailure_KeepsCause(t *testing.T) {
	cause := errors.New("deadlock found")
	err := TransactionFailure(cause)

	if !errors.Is(err, ErrTransactionFailure) {
		t.Error("expected match against ErrTransactionFailure")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable")
	}
	if err.Error() != "transaction failed: deadlock found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestKindOf_Plain(t *testing.T) {
	if KindOf(errors.New("boom")) != "" {
		t.Error("expected empty kind for a plain error")
	}
	if KindOf(nil) != "" {
		t.Error("expected empty kind for nil")
	}
}

package database

import (
	"context"
	"errors"
	"testing"
)

func TestClassifySQLiteError_Busy(t *testing.T) {
	busy, locked := classifySQLiteError(errors.New("SQLITE_BUSY: database is locked"))
	if !busy || locked {
		t.Fatalf("expected busy=true locked=false, got busy=%v locked=%v", busy, locked)
	}
}

func TestClassifySQLiteError_Locked(t *testing.T) {
	busy, locked := classifySQLiteError(errors.New("SQLITE_LOCKED: database table is locked"))
	if busy || !locked {
		t.Fatalf("expected busy=false locked=true, got busy=%v locked=%v", busy, locked)
	}
}

func TestClassifySQLiteError_ContextErrorsIgnored(t *testing.T) {
	busy, locked := classifySQLiteError(context.Canceled)
	if busy || locked {
		t.Fatalf("expected context errors to be ignored, got busy=%v locked=%v", busy, locked)
	}
}

func TestClassifySQLiteError_Nil(t *testing.T) {
	busy, locked := classifySQLiteError(nil)
	if busy || locked {
		t.Fatalf("expected nil error to classify as neither, got busy=%v locked=%v", busy, locked)
	}
}

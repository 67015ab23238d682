package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndCodeOf(t *testing.T) {
	base := stderrs.New("boom")
	err := Wrap(base, ErrorCodeDB, "query failed")

	if got := CodeOf(err); got != ErrorCodeDB {
		t.Fatalf("CodeOf = %v, want ErrorCodeDB", got)
	}
	if !stderrs.Is(err, base) {
		t.Fatalf("wrapped cause lost")
	}
	if Root(err) != base {
		t.Fatalf("Root did not reach the cause")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFoundf("missing"), http.StatusNotFound},
		{InvalidArgf("bad"), http.StatusUnprocessableEntity},
		{Newf(ErrorCodeValidation, "invalid"), http.StatusBadRequest},
		{DuplicateKeyf("dup"), http.StatusConflict},
		{Unavailablef("down"), http.StatusServiceUnavailable},
		{DBf("db"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWithFieldAndOpCopyOnWrite(t *testing.T) {
	orig := Newf(ErrorCodeValidation, "limit out of range")
	withField := WithField(orig, "limit")
	withOp := WithOp(withField, "incidents.latest")

	oe, _ := As(orig)
	if oe.Field() != "" {
		t.Fatalf("original mutated: field=%q", oe.Field())
	}
	fe, _ := As(withField)
	if fe.Field() != "limit" {
		t.Fatalf("field not attached: %q", fe.Field())
	}
	pe, _ := As(withOp)
	if pe.Op() != "incidents.latest" || pe.Field() != "limit" {
		t.Fatalf("op copy dropped metadata: op=%q field=%q", pe.Op(), pe.Field())
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Newf(ErrorCodeValidation, "location is required"), "location"))
	if w.Code != ErrorCodeValidation || w.Field != "location" || w.Message == "" {
		t.Fatalf("wire = %+v", w)
	}

	plain := WireFrom(stderrs.New("oops"))
	if plain.Code != ErrorCodeUnknown || plain.Message != "oops" {
		t.Fatalf("plain wire = %+v", plain)
	}
	if zero := WireFrom(nil); zero != (Wire{}) {
		t.Fatalf("nil wire = %+v", zero)
	}
}

package db

import (
	"errors"
	"testing"
)

func TestIsUniqueViolationMatchesDriverPhrasings(t *testing.T) {
	pg := errors.New(`ERROR: duplicate key value violates unique constraint "carousels_page_slug_key" (SQLSTATE 23505)`)
	lite := errors.New("UNIQUE constraint failed: carousel_items.carousel_id, carousel_items.ref_id")

	if !IsUniqueViolation(pg, "") {
		t.Fatalf("postgres phrasing should match without a constraint name")
	}
	if !IsUniqueViolation(lite, "") {
		t.Fatalf("sqlite phrasing should match without a constraint name")
	}
}

func TestIsUniqueViolationRestrictsToNamedConstraint(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "carousels_page_slug_key" (SQLSTATE 23505)`)

	if !IsUniqueViolation(err, "carousels_page_slug_key") {
		t.Fatalf("named constraint should match its own violation")
	}
	if IsUniqueViolation(err, "recipes_slug_key") {
		t.Fatalf("a different constraint's violation must not match")
	}
	if IsUniqueViolation(nil, "carousels_page_slug_key") {
		t.Fatalf("nil error is never a violation")
	}
}

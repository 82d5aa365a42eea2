package helper

import "testing"

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":       "class_room_name",
		"created_at": "class_room_created_at",
	}

	p := Params{SortBy: "created_at", SortOrder: "desc"}
	got, err := p.SafeOrderClause(allowed, "name")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if got != "class_room_created_at DESC" {
		t.Fatalf("got %q", got)
	}

	// sort_by di luar whitelist → jatuh ke default (kolom tidak bisa diinjeksi)
	p = Params{SortBy: "name; DROP TABLE class_rooms", SortOrder: "asc"}
	got, err = p.SafeOrderClause(allowed, "name")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if got != "class_room_name ASC" {
		t.Fatalf("got %q", got)
	}

	// sort_by kosong → default key
	p = Params{SortOrder: "asc"}
	if got, _ = p.SafeOrderClause(allowed, "created_at"); got != "class_room_created_at ASC" {
		t.Fatalf("got %q", got)
	}

	// default key tidak ada di whitelist → error, bukan clause kosong diam-diam
	if _, err = p.SafeOrderClause(allowed, "bogus"); err == nil {
		t.Fatalf("default key invalid harus error")
	}
}

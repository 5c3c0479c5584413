package bib

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRosterFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group.yaml")
	want := &Roster{
		Authors:  []string{"Jon Olav Vik", "Arne Bjørke Gjuvsland"},
		FromYear: 2009,
		ToYear:   2010,
		Category: "TIDSSKRIFTPUBL",
	}
	if err := WriteRosterFile(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRosterFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestReadRosterFileHandwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group.yaml")
	content := "authors:\n  - Dag Inge Våge\n  - Sigbjørn Lien\nfrom: 2003\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := ReadRosterFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Authors) != 2 || r.Authors[0] != "Dag Inge Våge" {
		t.Errorf("Authors = %v", r.Authors)
	}
	if r.FromYear != 2003 || r.ToYear != 0 {
		t.Errorf("years = %d-%d, want 2003-0", r.FromYear, r.ToYear)
	}
}

func TestReadRosterFileMissing(t *testing.T) {
	if _, err := ReadRosterFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

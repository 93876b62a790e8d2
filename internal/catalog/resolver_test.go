package catalog

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return Load([]Row{
		{Name: "Tower Hill", FX: "0.663", FY: "0.516", Lines: "circle;district"},
		{Name: "St Pauls", FX: "0.603", FY: "0.478", Lines: "central"},
		{Name: "Kings Cross St. Pancras", FX: "0.528", FY: "0.372", Lines: "northern;victoria"},
		{Name: "Tottenham Court Road", FX: "0.489", FY: "0.487", Lines: "central;northern"},
		{Name: "Temple", FX: "0.537", FY: "0.531", Lines: "circle;district"},
	})
}

func TestResolveExact(t *testing.T) {
	cat := testCatalog(t)
	for _, q := range []string{"Tower Hill", "tower hill", "TOWER-HILL!!", "towerhill"} {
		s, ok := cat.Resolve(q)
		if !ok {
			t.Fatalf("Resolve(%q) failed", q)
		}
		if s.Name != "Tower Hill" {
			t.Errorf("Resolve(%q) = %q, want Tower Hill", q, s.Name)
		}
	}
}

func TestResolveAlias(t *testing.T) {
	cases := []struct {
		q, want string
	}{
		{"st pauls", "St Pauls"},
		{"kings cross", "Kings Cross St. Pancras"},
		{"tottenham court rd", "Tottenham Court Road"},
		{"tower hamlets", "Tower Hill"},
	}
	cat := testCatalog(t)
	for _, c := range cases {
		s, ok := cat.Resolve(c.q)
		if !ok {
			t.Fatalf("Resolve(%q) failed", c.q)
		}
		if s.Name != c.want {
			t.Errorf("Resolve(%q) = %q, want %q", c.q, s.Name, c.want)
		}
	}
}

func TestResolveBlank(t *testing.T) {
	cat := testCatalog(t)
	for _, q := range []string{"", "   ", "!!!"} {
		if _, ok := cat.Resolve(q); ok {
			t.Errorf("Resolve(%q) should not match", q)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	cat := testCatalog(t)
	if _, ok := cat.Resolve("Narnia Central"); ok {
		t.Error("Resolve of unknown name should fail")
	}
}

func TestPrefixSuggestions(t *testing.T) {
	names := []string{"Temple", "Tower Hill", "Tottenham Court Road", "Tooting Bec", "Tooting Broadway", "Turnpike Lane", "Angel"}

	got := PrefixSuggestions("to", names, 5)
	want := []string{"Tooting Bec", "Tooting Broadway", "Tottenham Court Road", "Tower Hill"}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suggestions = %v, want %v", got, want)
		}
	}

	if got := PrefixSuggestions("", names, 5); len(got) != 0 {
		t.Errorf("empty query should yield no suggestions, got %v", got)
	}
	if got := PrefixSuggestions("t", names, 2); len(got) != 2 {
		t.Errorf("limit not applied, got %v", got)
	}
}

func TestSameLineAndOverlap(t *testing.T) {
	cat := testCatalog(t)
	tower, _ := cat.Resolve("tower hill")
	temple, _ := cat.Resolve("temple")
	stp, _ := cat.Resolve("st pauls")

	if !SameLine(tower, temple) {
		t.Error("Tower Hill and Temple share circle+district")
	}
	if SameLine(tower, stp) {
		t.Error("Tower Hill and St Pauls share no line")
	}

	overlap := OverlappingLines(tower, temple)
	if len(overlap) != 2 || overlap[0] != "circle" || overlap[1] != "district" {
		t.Errorf("overlap = %v, want [circle district]", overlap)
	}
	if got := OverlappingLines(tower, stp); len(got) != 0 {
		t.Errorf("overlap = %v, want none", got)
	}
}

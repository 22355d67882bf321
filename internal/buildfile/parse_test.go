package buildfile

import (
	"bytes"
	"testing"
)

func TestParse_RoundTripIsByteIdentical(t *testing.T) {
	inputs := []string{
		appBuild,
		"",
		"# just a comment\n",
		"no trailing newline",
		"deps = [\n    \"//A:A\",\n]\n",
	}

	for _, in := range inputs {
		f := Parse([]byte(in))
		if out := f.Bytes(); !bytes.Equal(out, []byte(in)) {
			t.Errorf("round trip changed content:\nin:  %q\nout: %q", in, out)
		}
	}
}

func TestParse_IndexesListsAndMarkers(t *testing.T) {
	f := Parse([]byte(appBuild))

	deps := f.List("deps")
	if deps == nil {
		t.Fatal("deps list not indexed")
	}
	if len(deps.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(deps.Items))
	}
	if deps.Items[0].Value != "//Core/Logging:Logging" {
		t.Errorf("unexpected first item: %q", deps.Items[0].Value)
	}
	if _, ok := deps.Markers[CategoryCore]; !ok {
		t.Error("core marker not indexed")
	}
	if _, ok := deps.Markers[CategoryFeature]; !ok {
		t.Error("feature marker not indexed")
	}
	if _, ok := deps.Markers[CategoryData]; ok {
		t.Error("data marker indexed but not present in file")
	}
}

func TestParse_GlobIsNotAList(t *testing.T) {
	f := Parse([]byte(`srcs = glob(["Sources/**/*.swift"])` + "\n"))
	if f.List("srcs") != nil {
		t.Error("glob call indexed as a list field")
	}
}

func TestParse_SingleLineList(t *testing.T) {
	f := Parse([]byte(`top_level_targets = ["//App:App", "//App:Tests"]` + "\n"))

	l := f.List("top_level_targets")
	if l == nil {
		t.Fatal("single-line list not indexed")
	}
	if l.Open != l.Close {
		t.Error("single-line list should open and close on the same line")
	}
	if len(l.Items) != 2 || l.Items[1].Value != "//App:Tests" {
		t.Errorf("unexpected items: %+v", l.Items)
	}
}

func TestParse_UnclosedListDropped(t *testing.T) {
	f := Parse([]byte("deps = [\n    \"//A:A\",\n"))
	if f.List("deps") != nil {
		t.Error("unclosed list should not be indexed")
	}
}

func TestCategoryForPath(t *testing.T) {
	cases := map[string]Category{
		"Features/Login":  CategoryFeature,
		"//Features/Auth": CategoryFeature,
		"Data/Net":        CategoryData,
		"Common/UI":       CategoryCommon,
		"Core/Logging":    CategoryCore,
		"ThirdParty/Maps": CategoryOther,
		"Core":            CategoryCore, // bare parent-level package
		"//Common":        CategoryCommon,
		"Vendor":          CategoryOther,
	}

	for path, want := range cases {
		if got := CategoryForPath(path); got != want {
			t.Errorf("CategoryForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

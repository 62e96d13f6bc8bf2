package module

import "testing"

func TestParse_ValidCoordinate(t *testing.T) {
	id, err := Parse("org.slf4j:slf4j-api")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if id.Group != "org.slf4j" {
		t.Errorf("Expected group org.slf4j, got %s", id.Group)
	}

	if id.Name != "slf4j-api" {
		t.Errorf("Expected name slf4j-api, got %s", id.Name)
	}
}

func TestParse_InvalidCoordinates(t *testing.T) {
	invalid := []string{
		"",
		"nogroup",
		":missing-group",
		"missing-name:",
		"too:many:parts",
	}

	for _, coordinate := range invalid {
		if _, err := Parse(coordinate); err == nil {
			t.Errorf("Expected error for coordinate %q, got none", coordinate)
		}
	}
}

func TestIdentifier_String(t *testing.T) {
	id := NewIdentifier("com.example", "core")
	if id.String() != "com.example:core" {
		t.Errorf("Expected com.example:core, got %s", id.String())
	}
}

func TestIdentifier_Equality(t *testing.T) {
	a := NewIdentifier("com.example", "core")
	b := NewIdentifier("com.example", "core")
	c := NewIdentifier("com.example", "extra")

	if a != b {
		t.Error("Expected identifiers with equal coordinates to be equal")
	}

	if a == c {
		t.Error("Expected identifiers with different names to differ")
	}
}

func TestCompare_GroupThenName(t *testing.T) {
	tests := []struct {
		a, b Identifier
		want int
	}{
		{NewIdentifier("a", "x"), NewIdentifier("b", "x"), -1},
		{NewIdentifier("b", "x"), NewIdentifier("a", "x"), 1},
		{NewIdentifier("a", "x"), NewIdentifier("a", "y"), -1},
		{NewIdentifier("a", "y"), NewIdentifier("a", "x"), 1},
		{NewIdentifier("a", "x"), NewIdentifier("a", "x"), 0},
	}

	for _, tt := range tests {
		got := Compare(tt.a, tt.b)
		if (got < 0) != (tt.want < 0) || (got > 0) != (tt.want > 0) {
			t.Errorf("Compare(%s, %s) = %d, want sign of %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSort_OrdersByGroupThenName(t *testing.T) {
	ids := []Identifier{
		NewIdentifier("org.b", "one"),
		NewIdentifier("org.a", "two"),
		NewIdentifier("org.a", "one"),
	}

	Sort(ids)

	want := []Identifier{
		NewIdentifier("org.a", "one"),
		NewIdentifier("org.a", "two"),
		NewIdentifier("org.b", "one"),
	}

	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Expected %s at position %d, got %s", want[i], i, ids[i])
		}
	}
}

func TestJoin_PreservesOrder(t *testing.T) {
	ids := []Identifier{
		NewIdentifier("org.b", "one"),
		NewIdentifier("org.a", "two"),
	}

	joined := Join(ids, " or ")
	if joined != "org.b:one or org.a:two" {
		t.Errorf("Unexpected join result: %s", joined)
	}
}

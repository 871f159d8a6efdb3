package ir

import (
	"errors"
	"testing"
)

func TestNewIdentifier_Empty(t *testing.T) {
	_, err := NewIdentifier("")
	if err == nil {
		t.Fatal("expected error for empty identifier")
	}
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
	var idErr *IdentifierError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected *IdentifierError, got %T", err)
	}
	if got := err.Error(); got != "invalid identifier value: ''" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestNewIdentifier_ExactText(t *testing.T) {
	for _, text := range []string{"a", "line_one", "POBox", "with space", "ünï"} {
		id, err := NewIdentifier(text)
		if err != nil {
			t.Fatalf("NewIdentifier(%q): %v", text, err)
		}
		if id.String() != text {
			t.Errorf("String() = %q, want %q", id.String(), text)
		}
	}
}

func TestMustIdentifier_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustIdentifier("")
}

func TestIdentifier_Compare(t *testing.T) {
	a, b := MustIdentifier("a"), MustIdentifier("b")
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(MustIdentifier("a")) != 0 {
		t.Error("Compare does not order by text")
	}
	if a != MustIdentifier("a") {
		t.Error("identifiers with equal text should be equal")
	}
}

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"std::io", "std.io"},
		{"std.io", "std.io"},
		{"std/io", "std.io"},
		{"single", "single"},
		{"a::b.c/d", "a.b.c.d"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ns, err := ParseNamespace(tt.input)
			if err != nil {
				t.Fatalf("ParseNamespace: %v", err)
			}
			if ns.String() != tt.want {
				t.Errorf("got %q, want %q", ns.String(), tt.want)
			}
		})
	}
}

func TestParseNamespace_Invalid(t *testing.T) {
	for _, input := range []string{"", "std::", "::io", "a..b"} {
		if _, err := ParseNamespace(input); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("ParseNamespace(%q) = %v, want ErrInvalidIdentifier", input, err)
		}
	}
}

func TestNamespace_Operations(t *testing.T) {
	ns := NewNamespace(MustIdentifier("std"), MustIdentifier("io"))
	if ns.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ns.Len())
	}
	if ns.Join("::") != "std::io" {
		t.Errorf("Join = %q", ns.Join("::"))
	}
	if ns.Last().String() != "io" {
		t.Errorf("Last = %q", ns.Last())
	}
	if !ns.Contains(MustIdentifier("std")) || ns.Contains(MustIdentifier("fmt")) {
		t.Error("Contains reports wrong membership")
	}

	parent, ok := ns.Parent()
	if !ok || parent.String() != "std" {
		t.Errorf("Parent = %q, %v", parent, ok)
	}
	if _, ok := parent.Parent(); ok {
		t.Error("single-segment namespace should have no parent")
	}

	child := ns.With(MustIdentifier("fs"))
	if child.String() != "std.io.fs" || ns.String() != "std.io" {
		t.Errorf("With mutated receiver or produced %q", child)
	}
	if !child.Equal(NewNamespace(MustIdentifier("std"), MustIdentifier("io"), MustIdentifier("fs"))) {
		t.Error("Equal should compare segments")
	}

	path := ns.Path()
	path[0] = MustIdentifier("core")
	if ns.String() != "std.io" {
		t.Error("Path should return a copy")
	}
}

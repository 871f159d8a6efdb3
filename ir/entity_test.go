package ir

import (
	"reflect"
	"testing"
)

func TestValueType_KnownNames(t *testing.T) {
	tests := []struct {
		kind KnownType
		want string
	}{
		{KnownI8, "i8"},
		{KnownU64, "u64"},
		{KnownF32, "f32"},
		{KnownBoolean, "bool"},
		{KnownChar, "char"},
		{KnownString, "string"},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.want {
			t.Errorf("KnownType(%d).String() = %q, want %q", tt.kind, tt.kind.String(), tt.want)
		}
	}
}

func TestValueType_SetOfBuildsSet(t *testing.T) {
	st, ok := SetOf(KnownString).(SetType)
	if !ok {
		t.Fatalf("SetOf returned %T, want SetType", SetOf(KnownString))
	}
	if st.Element != KnownString {
		t.Errorf("element = %v, want string", st.Element)
	}
}

func TestValue_TypeAsymmetry(t *testing.T) {
	scalars := []struct {
		v    Value
		want ValueType
	}{
		{I8(1), KnownI8},
		{U8(1), KnownU8},
		{I16(1), KnownI16},
		{U16(1), KnownU16},
		{I32(1), KnownI32},
		{U32(1), KnownU32},
		{I64(1), KnownI64},
		{U64(1), KnownU64},
		{F32(1), KnownF32},
		{F64(1), KnownF64},
		{Bool(true), KnownBoolean},
		{Char('x'), KnownChar},
		{String("s"), KnownString},
	}
	for _, tt := range scalars {
		got, ok := tt.v.Type()
		if !ok || got != tt.want {
			t.Errorf("%T.Type() = %v, %v; want %v", tt.v, got, ok, tt.want)
		}
	}

	for _, v := range []Value{Values{I32(1)}, NamedValues{{Key: String("k"), Value: I32(1)}}, MustIdentifier("X")} {
		if typ, ok := v.Type(); ok || typ != nil {
			t.Errorf("%T.Type() should report no type", v)
		}
	}
}

func TestNewScalar_InfersType(t *testing.T) {
	nv := NewScalar(MustIdentifier("MAX"), U32(10)).Build()
	if nv.Type() != KnownU32 {
		t.Errorf("Type() = %v, want u32", nv.Type())
	}
	if nv.Value() != U32(10) {
		t.Errorf("Value() = %v, want 10", nv.Value())
	}
}

func TestFieldBuilder_SnapshotIsolation(t *testing.T) {
	b := NewField(MustIdentifier("count"), KnownI32).Required()
	first := b.Build()
	b.Optional().Documentation("changed").Property(NewProperty(MustIdentifier("serde")))
	second := b.Build()

	if first.IsOptional() || first.HasDocumentation() || first.HasProperties() {
		t.Error("builder changes leaked into an earlier snapshot")
	}
	if !second.IsOptional() || second.Documentation() != "changed" || len(second.Properties()) != 1 {
		t.Error("second snapshot missing builder changes")
	}
}

func TestFieldBuilder_Defaults(t *testing.T) {
	f := NewField(MustIdentifier("name"), KnownString).Build()
	if f.IsOptional() || !f.IsRequired() {
		t.Error("fields are required by default")
	}
	if f.Visibility() != VisibilityUnspecified {
		t.Errorf("visibility = %v, want unspecified", f.Visibility())
	}
	if _, ok := f.Default(); ok {
		t.Error("no default expected")
	}
}

func TestStructuredTypeBuilder_FieldSnapshot(t *testing.T) {
	b := NewStructure(MustIdentifier("Address")).
		Field(NewField(MustIdentifier("city"), KnownString).Build())
	first := b.Build()
	b.Field(NewField(MustIdentifier("zip"), KnownString).Build())
	second := b.Build()

	if len(first.Fields()) != 1 || len(second.Fields()) != 2 {
		t.Errorf("fields = %d, %d; want 1, 2", len(first.Fields()), len(second.Fields()))
	}
	if first.Kind() != KindStructure {
		t.Errorf("kind = %v", first.Kind())
	}

	fields := second.Fields()
	fields[0] = NewField(MustIdentifier("other"), KnownI8).Build()
	if second.Fields()[0].Name().String() != "city" {
		t.Error("Fields should return a copy")
	}
}

func TestPropertyValue_DeepCopy(t *testing.T) {
	args := Values{MustIdentifier("Clone"), MustIdentifier("Debug")}
	p := PropertyWithValue(MustIdentifier("derive"), args)
	args[0] = MustIdentifier("Hash")

	v, ok := p.Value()
	if !ok {
		t.Fatal("expected a value")
	}
	want := Values{MustIdentifier("Clone"), MustIdentifier("Debug")}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("value = %v, want %v", v, want)
	}
}

func TestEnumerationVariant_Payloads(t *testing.T) {
	plain := NewVariant(MustIdentifier("A")).Build()
	if _, ok := plain.Type(); ok {
		t.Error("plain variant has no type")
	}
	if _, ok := plain.Value(); ok {
		t.Error("plain variant has no value")
	}

	valued := NewVariant(MustIdentifier("B")).Value(I32(2)).Build()
	if v, ok := valued.Value(); !ok || v != I32(2) {
		t.Errorf("value = %v, %v", v, ok)
	}

	e := NewEnumeration(MustIdentifier("E")).Variant(plain).NamedVariant(MustIdentifier("C")).Build()
	if got := len(e.Variants()); got != 2 {
		t.Errorf("variants = %d, want 2", got)
	}
}

func TestFunctionBuilder(t *testing.T) {
	f := NewFunction(MustIdentifier("open")).
		Parameter(NewParameter(MustIdentifier("path"), KnownString).Build()).
		Returns(KnownBoolean).
		Build()
	if len(f.Parameters()) != 1 {
		t.Fatalf("parameters = %d", len(f.Parameters()))
	}
	if r, ok := f.Result(); !ok || r != KnownBoolean {
		t.Errorf("result = %v, %v", r, ok)
	}
	if _, ok := NewFunction(MustIdentifier("noop")).Build().Result(); ok {
		t.Error("function without Returns has no result")
	}
}

func TestModuleBuilder_ContentOrder(t *testing.T) {
	sub := NewModule(MustIdentifier("child")).Build()
	m := NewModule(MustIdentifier("root")).
		Import(NewImport(NewNamespace(MustIdentifier("std"))).Build()).
		Comment(NewLineComment("hi")).
		Structure(NewStructure(MustIdentifier("S")).Build()).
		Enumeration(NewEnumeration(MustIdentifier("E")).Build()).
		Constant(NewScalar(MustIdentifier("C"), I32(1)).Build()).
		Variable(NewScalar(MustIdentifier("v"), Bool(true)).Build()).
		Function(NewFunction(MustIdentifier("f")).Build()).
		Alias(NewTypeAlias(MustIdentifier("A"), KnownString).Build()).
		SubModule(sub).
		Build()

	want := []ElementKind{
		ElementImport, ElementComment, ElementStructuredType, ElementEnumeration,
		ElementConstant, ElementVariable, ElementFunction, ElementTypeAlias, ElementModule,
	}
	content := m.Content()
	if len(content) != len(want) {
		t.Fatalf("content = %d items, want %d", len(content), len(want))
	}
	for i, item := range content {
		if item.ElementKind() != want[i] {
			t.Errorf("item %d kind = %v, want %v", i, item.ElementKind(), want[i])
		}
	}
	if subs := m.SubModules(); len(subs) != 1 || subs[0].Name().String() != "child" {
		t.Errorf("SubModules = %v", subs)
	}
}

func TestModuleBuilder_SnapshotIsolation(t *testing.T) {
	b := NewModule(MustIdentifier("m")).Comment(NewLineComment("one"))
	first := b.Build()
	b.Comment(NewLineComment("two"))
	if len(first.Content()) != 1 {
		t.Errorf("earlier snapshot has %d items, want 1", len(first.Content()))
	}
	if len(b.Build().Content()) != 2 {
		t.Error("later snapshot missing item")
	}
}

func TestNewInlineModule(t *testing.T) {
	if !NewInlineModule(MustIdentifier("m")).Build().IsInline() {
		t.Error("expected inline module")
	}
	if NewModule(MustIdentifier("m")).Build().IsInline() {
		t.Error("expected non-inline module")
	}
}

func TestImportBuilder(t *testing.T) {
	io := NewImport(NewNamespace(MustIdentifier("std"), MustIdentifier("io"))).
		Item(MustIdentifier("Write")).
		ItemAs(MustIdentifier("Error"), MustIdentifier("IoError")).
		Build()
	items := io.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	if _, ok := items[0].Alias(); ok {
		t.Error("first item has no alias")
	}
	if alias, ok := items[1].Alias(); !ok || alias.String() != "IoError" {
		t.Errorf("alias = %v, %v", alias, ok)
	}
}

func TestElementKind_String(t *testing.T) {
	if ElementVariable.String() != "variable" {
		t.Errorf("got %q", ElementVariable.String())
	}
	if ElementStructuredType.String() != "record" {
		t.Errorf("got %q", ElementStructuredType.String())
	}
}

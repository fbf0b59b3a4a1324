package patch

import (
	"encoding/json"
	"errors"
	"testing"
)

type body struct {
	Name  Value[string]    `json:"name"`
	Room  Nullable[string] `json:"room"`
	Count Value[int]       `json:"count"`
}

func TestValue_AbsentLeavesTargetUntouched(t *testing.T) {
	var b body
	if err := json.Unmarshal([]byte(`{}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	name := "kept"
	b.Name.ApplyTo(&name)
	if name != "kept" {
		t.Fatalf("expected name unchanged, got %q", name)
	}
	if b.Name.ValidationValue() != nil {
		t.Fatalf("absent value must validate as nil")
	}
}

func TestValue_PresentOverwrites(t *testing.T) {
	var b body
	if err := json.Unmarshal([]byte(`{"name":"Ward B","count":0}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	name, count := "Ward A", 7
	b.Name.ApplyTo(&name)
	b.Count.ApplyTo(&count)
	if name != "Ward B" {
		t.Fatalf("expected Ward B, got %q", name)
	}
	if count != 0 {
		t.Fatalf("explicit zero must overwrite, got %d", count)
	}
}

func TestValue_NullRejected(t *testing.T) {
	var b body
	err := json.Unmarshal([]byte(`{"name":null}`), &b)
	if !errors.Is(err, ErrNullNotAllowed) {
		t.Fatalf("expected ErrNullNotAllowed, got %v", err)
	}
}

func TestNullable_ThreeStates(t *testing.T) {
	room := "304-A"
	dst := &room

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	absent.Room.ApplyTo(&dst)
	if dst == nil || *dst != "304-A" {
		t.Fatalf("absent must keep value")
	}

	var set body
	if err := json.Unmarshal([]byte(`{"room":"ICU-02"}`), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	set.Room.ApplyTo(&dst)
	if dst == nil || *dst != "ICU-02" {
		t.Fatalf("present value must replace")
	}

	var cleared body
	if err := json.Unmarshal([]byte(`{"room":null}`), &cleared); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cleared.Room.IsNull() {
		t.Fatalf("expected IsNull")
	}
	cleared.Room.ApplyTo(&dst)
	if dst != nil {
		t.Fatalf("null must clear, got %q", *dst)
	}
}

func TestNullable_ApplyToCopiesValue(t *testing.T) {
	n := Some("a")
	var dst *string
	n.ApplyTo(&dst)
	*dst = "mutated"

	if v := n.ValidationValue(); v != "a" {
		t.Fatalf("patch value must not alias target, got %v", v)
	}
}

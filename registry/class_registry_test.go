/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"strings"
	"testing"
)

type alphaClass struct{}

type betaClass struct {
	alphaClass
}

type gammaClass struct{}

func alphaRecord() Record {
	return Record{
		Type: reflect.TypeOf(alphaClass{}),
		Name: "alpha",
		New:  func() any { return &alphaClass{} },
	}
}

func TestRegisterClassIdempotent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RegisterClass(alphaRecord())

	// Second registration must not overwrite the first record.
	RegisterClass(Record{
		Type:   reflect.TypeOf(alphaClass{}),
		Name:   "other",
		Resist: true,
		New:    func() any { return &alphaClass{} },
	})

	rec, ok := LookupClass(reflect.TypeOf(alphaClass{}))
	if !ok {
		t.Fatal("Expected alphaClass to be registered")
	}
	if rec.Name != "alpha" || rec.Resist {
		t.Fatalf("First registration must win, got %+v", rec)
	}
}

func TestLookupClassDereferencesPointer(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RegisterClass(alphaRecord())

	if _, ok := LookupClass(reflect.TypeOf(&alphaClass{})); !ok {
		t.Fatal("Pointer types must resolve to their element type")
	}
}

func TestResolveClassThroughEmbedding(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RegisterClass(alphaRecord())

	rec, ok := ResolveClass(reflect.TypeOf(betaClass{}))
	if !ok {
		t.Fatal("Embedding a registered class must resolve through the ancestor")
	}
	if rec.Type != reflect.TypeOf(alphaClass{}) {
		t.Fatalf("Expected the ancestor's record, got %v", rec.Type)
	}

	if IsPoddable(reflect.TypeOf(gammaClass{})) {
		t.Fatal("Unregistered, non-embedding class must not be poddable")
	}
}

func TestRegisterNameConflictPanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RegisterName("alpha", func() any { return &alphaClass{} })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic on conflicting name registration")
		}
		if !strings.Contains(r.(string), "already registered") {
			t.Fatalf("Unexpected panic message: %v", r)
		}
	}()
	RegisterName("alpha", func() any { return &gammaClass{} })
}

func TestGetFactory(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RegisterName("alpha", func() any { return &alphaClass{} })

	fn, err := GetFactory("alpha")
	if err != nil {
		t.Fatalf("Expected factory, got error: %v", err)
	}
	if _, ok := fn().(*alphaClass); !ok {
		t.Fatal("Factory must produce the registered class")
	}

	if _, err := GetFactory("missing"); err == nil {
		t.Fatal("Expected error for unregistered name")
	}
}

package main

import (
	"testing"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

func TestLoadManifest(t *testing.T) {
	runs, err := loadManifest("testdata/runs.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %v", len(runs))
	}

	r := runs[0]
	if r.Name != "exp-fine" || kexp.Name(r.Kernel) != "Exponential" ||
		r.TMax != 5 || r.N != 2000 || r.X0 != 1 || r.Rule != volterra.Simpson {
		t.Errorf("run 0 loaded wrong: %+v", r)
	}

	// omitted fields fall back to the defaults
	r = runs[1]
	if kexp.Name(r.Kernel) != "PowerLaw" {
		t.Errorf("run 1 kernel: expected PowerLaw, got %v", kexp.Name(r.Kernel))
	}
	if r.TMax != 10 || r.N != 1000 || r.X0 != 0.5 || r.Rule != volterra.Trapezoid {
		t.Errorf("run 1 defaults wrong: %+v", r)
	}
	if r.Name != "run1-PowerLaw" {
		t.Errorf("run 1 name: expected run1-PowerLaw, got %v", r.Name)
	}

	r = runs[2]
	if r.X0 != 1 || r.TMax != 20 || kexp.Name(r.Kernel) != "DistOrder_5" {
		t.Errorf("run 2 loaded wrong: %+v", r)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := loadManifest("testdata/nosuch.yaml"); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestLookupKernel(t *testing.T) {
	k, err := lookupKernel("mittagleffler")
	if err != nil {
		t.Fatal(err)
	}
	if kexp.Name(k) != "MittagLeffler" {
		t.Errorf("expected MittagLeffler, got %v", kexp.Name(k))
	}

	if _, err := lookupKernel("nosuch"); err == nil {
		t.Error("unknown kernel: expected an error")
	}
}

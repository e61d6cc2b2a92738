package main

import (
	"testing"

	"github.com/Beinsezii/linch/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesModeAndFlags(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"bin", "-rows", "10", "-footer"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}

	payload := startupTracePayload(cfg)

	if payload["mode"] != "bin" {
		t.Fatalf("expected mode bin, got %v", payload["mode"])
	}
	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["rows"] != "10" {
		t.Fatalf("expected rows 10, got %v", flagsValue["rows"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer true, got %v", flagsValue["footer"])
	}
	if flagsValue["cache"] != "bin" {
		t.Fatalf("expected cache namespace bin, got %v", flagsValue["cache"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}

func TestBuildCatalogRejectsUnknownMode(t *testing.T) {
	if _, err := buildCatalog(config.Config{Mode: config.Mode("bogus")}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterMarkers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Successf("created %s", "demo-app")
	p.Warnf("tool %s missing", "antlr4")
	p.Errorf("cannot create directory")
	p.Infof("done")

	out := buf.String()
	for _, want := range []string{
		"✓ created demo-app",
		"! Warning: tool antlr4 missing",
		"✗ Error: cannot create directory",
		"done",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterColorMode(t *testing.T) {
	var buf bytes.Buffer

	if NewPrinter(&buf, true).Color() != true {
		t.Error("Color() should report the configured mode")
	}
	if NewPrinter(&buf, false).Color() != false {
		t.Error("Color() should report the configured mode")
	}
}

func TestSuccessCard(t *testing.T) {
	t.Run("plain_mode_has_no_border", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, false)

		card := p.SuccessCard("Project created", "Path:  /tmp/demo-app")
		if strings.Contains(card, "╭") {
			t.Errorf("plain card should not be boxed:\n%s", card)
		}
		if !strings.Contains(card, "Project created") || !strings.Contains(card, "Path:  /tmp/demo-app") {
			t.Errorf("card missing content:\n%s", card)
		}
	})

	t.Run("color_mode_draws_a_border", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true)

		card := p.SuccessCard("Project created")
		if !strings.Contains(card, "╭") {
			t.Errorf("colored card should be boxed:\n%s", card)
		}
	})
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should report headless")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should report not headless")
	}
}

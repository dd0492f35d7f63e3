// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"
)

func TestSetPlainToggles(t *testing.T) {
	defer SetPlain(false)

	SetPlain(true)
	if !Plain() {
		t.Error("Plain() = false after SetPlain(true)")
	}
	SetPlain(false)
	if Plain() {
		t.Error("Plain() = true after SetPlain(false)")
	}
}

func TestIconRenderKeepsGlyph(t *testing.T) {
	icons := []Icon{IconSuccess, IconWarning, IconError, IconArrow, IconBullet}
	for _, icon := range icons {
		if !strings.Contains(icon.Render(), string(icon)) {
			t.Errorf("Icon %q lost its glyph in Render(): %q", icon, icon.Render())
		}
	}
}

// seehuhn.de/go/sensorgrid - sensor grids for daylighting analysis
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, "warn", "json")

	l.Info("dropped")
	assert.Zero(t, buf.Len(), "info message should be filtered at warn level")

	l.Warn("floor skipped", "floor", "attic")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "floor skipped", rec["msg"])
	assert.Equal(t, "attic", rec["floor"])
}

func TestNewText(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, "debug", "")
	l.Debug("lattice", "points", 12)
	assert.Contains(t, buf.String(), "points=12")
}

func TestL(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	defaultLogger = nil
	l := L()
	require.NotNil(t, l)
	assert.Same(t, l, L())
	assert.False(t, l.Enabled(t.Context(), slog.LevelWarn))
}

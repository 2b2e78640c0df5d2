// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_JSONWhenNotTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelDebug)

	logger.Debug("command completed", "command", ".exit")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buffer.String())
	}
	if record["command"] != ".exit" {
		t.Errorf("command attribute = %v, want .exit", record["command"])
	}
}

func TestNewLogger_TextOnTerminalRespectsLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, true, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Warn("shown", "command", ".timer")

	output := buffer.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug record written at warn level: %q", output)
	}
	if !strings.Contains(output, "msg=shown") || !strings.Contains(output, "command=.timer") {
		t.Errorf("text output = %q, want msg=shown command=.timer", output)
	}
}

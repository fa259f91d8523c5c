package util

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func saveLoggerState() (io.Writer, logrus.Level, logrus.Formatter) {
	return Logger.Out, Logger.Level, Logger.Formatter
}

func restoreLoggerState(out io.Writer, level logrus.Level, formatter logrus.Formatter) {
	Logger.SetOutput(out)
	Logger.SetLevel(level)
	Logger.SetFormatter(formatter)
}

func TestSetLogLevel(t *testing.T) {
	out, level, formatter := saveLoggerState()
	defer restoreLoggerState(out, level, formatter)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetLogLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestSetLogOutputAndJSONFormat(t *testing.T) {
	out, level, formatter := saveLoggerState()
	defer restoreLoggerState(out, level, formatter)

	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetJSONFormat()

	WithDevice("leaf1-ny").Info("collection started")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output to be written to buffer")
	}
	if output[0] != '{' {
		t.Errorf("expected JSON output starting with '{', got: %s", output)
	}
}

func TestWithFieldAndWithFields(t *testing.T) {
	if entry := WithField("key", "value"); entry == nil {
		t.Error("WithField should return non-nil entry")
	}
	if entry := WithFields(map[string]interface{}{"a": 1, "b": "two"}); entry == nil {
		t.Error("WithFields should return non-nil entry")
	}
}

func TestWithDeviceAndWithOperation(t *testing.T) {
	if entry := WithDevice("leaf1-ny"); entry.Data["device"] != "leaf1-ny" {
		t.Errorf("WithDevice did not set device field: %+v", entry.Data)
	}
	if entry := WithOperation("sync"); entry.Data["operation"] != "sync" {
		t.Errorf("WithOperation did not set operation field: %+v", entry.Data)
	}
}

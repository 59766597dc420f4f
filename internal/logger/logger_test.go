package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/config"
)

func TestBuildEncoders(t *testing.T) {
	tests := []struct {
		name     string
		stage    string
		expected []string
	}{
		{name: "dev console", stage: config.StageDev, expected: []string{"INFO", "board generated", "attempts"}},
		{name: "prod json", stage: config.StageProd, expected: []string{`"level":"INFO"`, `"msg":"board generated"`, `"attempts":12`}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := build(test.stage, zapcore.InfoLevel, zapcore.AddSync(&buf))
			log.Infow("board generated", "attempts", 12)
			log.Debugw("dropped below level")
			_ = log.Sync()

			out := buf.String()
			for _, want := range test.expected {
				if !strings.Contains(out, want) {
					t.Fatalf("expected %q in output\tgot: %s", want, out)
				}
			}
			if strings.Contains(out, "dropped below level") {
				t.Fatal("debug line should be filtered at info level")
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(config.Config{Stage: config.StageDev, LogLevel: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

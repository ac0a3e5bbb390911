package textcrypt

import "testing"

func TestWriteOptions_Default(t *testing.T) {
	cfg := writeConfig{}
	if cfg.overwrite {
		t.Error("overwrite should default to false")
	}
}

func TestWithOverwrite(t *testing.T) {
	cfg := writeConfig{}
	WithOverwrite()(&cfg)
	if !cfg.overwrite {
		t.Error("WithOverwrite() did not set overwrite")
	}
}

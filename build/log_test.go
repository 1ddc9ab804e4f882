package build

import "testing"

func TestLogWriterWritesStdoutOnlyWithoutRotator(t *testing.T) {
	w := &LogWriter{}
	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len("hello") {
		t.Fatalf("got n=%d, want %d", n, len("hello"))
	}
}

func TestNewSubLoggerTagsBackend(t *testing.T) {
	logger := NewSubLogger("TEST", Backend.Logger)
	if logger == nil {
		t.Fatalf("expected a non-nil logger")
	}
}

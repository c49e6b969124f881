package writers

import (
	"bytes"
	"io"
	"strings"
	"syscall"
	"testing"

	"pangfa-core/gfa"
)

func TestUnknownTableFormatError(t *testing.T) {
	var b bytes.Buffer
	_, err := NewTable("nope-format", &b)
	if err == nil || !strings.Contains(err.Error(), "unknown table format") {
		t.Fatalf("want 'unknown table format' error, got: %v", err)
	}
}

func TestTSVTable(t *testing.T) {
	var b bytes.Buffer
	tb, err := NewTable(TableFormat(false), &b)
	if err != nil {
		t.Fatal(err)
	}
	_ = tb.Header("NodeName", "Length")
	_ = tb.Row(gfa.NodeID(12), 40)
	_ = tb.Row("7", 0.5)
	if err := tb.Close(); err != nil {
		t.Fatal(err)
	}
	want := "# NodeName\tLength\n12\t40\n7\t0.5\n"
	if b.String() != want {
		t.Fatalf("tsv:\nwant %q\ngot  %q", want, b.String())
	}
}

func TestPrettyTableRendersCells(t *testing.T) {
	var b bytes.Buffer
	tb, err := NewTable(TableFormat(true), &b)
	if err != nil {
		t.Fatal(err)
	}
	_ = tb.Header("PathName", "Length")
	_ = tb.Row("chr1", 1234)
	if err := tb.Close(); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, s := range []string{"chr1", "1234"} {
		if !strings.Contains(out, s) {
			t.Fatalf("pretty output lacks %q:\n%s", s, out)
		}
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestRecordWriter(t *testing.T) {
	var b bytes.Buffer
	rw := NewRecordWriter(&b)
	if err := rw.Write(&gfa.Other{Line: "H\tVN:Z:1.0"}); err != nil {
		t.Fatal(err)
	}
	if err := rw.Write(&gfa.Segment{ID: 3, Seq: []byte("AC")}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "H\tVN:Z:1.0\nS\t3\tAC\n" || rw.Count() != 2 {
		t.Fatalf("got %q (%d)", b.String(), rw.Count())
	}

	err := NewRecordWriter(failWriter{syscall.EPIPE}).Write(&gfa.Other{Line: "x"})
	if !IsBrokenPipe(err) {
		t.Fatalf("EPIPE should survive wrapping, got %v", err)
	}
	if IgnoreBrokenPipe(err) != nil {
		t.Fatalf("IgnoreBrokenPipe kept %v", err)
	}
	if got := IgnoreBrokenPipe(io.ErrUnexpectedEOF); got != io.ErrUnexpectedEOF {
		t.Fatalf("IgnoreBrokenPipe dropped a real error")
	}
}

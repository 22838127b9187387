package source

import (
	"testing"
)

// TestFileVersioning проверяет версионирование буферов с одинаковым путём
func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	content1 := []byte("li a0, 1")
	id1 := fs.Add("prog.s", content1, 0)

	latestID, exists := fs.GetLatest("prog.s")
	if !exists {
		t.Error("Expected file to exist")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Второй Add с тем же путём даёт новый FileID, индекс указывает на него
	content2 := []byte("li a0, 2")
	id2 := fs.Add("prog.s", content2, 0)
	if id2 == id1 {
		t.Error("Expected different FileID for second Add")
	}

	latestID, exists = fs.GetLatest("prog.s")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}

	// Оба буфера остаются доступными
	if string(fs.Get(id1).Content) != "li a0, 1" {
		t.Errorf("Unexpected first file content %q", fs.Get(id1).Content)
	}
	if string(fs.Get(id2).Content) != "li a0, 2" {
		t.Errorf("Unexpected second file content %q", fs.Get(id2).Content)
	}
}

// TestAddVirtualFlag проверяет флаг виртуального буфера
func TestAddVirtualFlag(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.s", []byte("li"))

	if fs.Get(id).Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

// TestResolveSingleLine проверяет разрешение позиций в однострочном буфере
func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.s", []byte("li a0, 1"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5}) // "a0"
	if (start != LineCol{Line: 1, Col: 4}) {
		t.Errorf("Expected start 1:4, got %d:%d", start.Line, start.Col)
	}
	if (end != LineCol{Line: 1, Col: 6}) {
		t.Errorf("Expected end 1:6, got %d:%d", end.Line, end.Col)
	}
}

// TestResolveMultiLine проверяет разрешение позиций через границы строк
func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	// строка 1: "li a0, 1" (байты 0-7), \n на 8, строка 2: "li a0, 2" (9-16)
	id := fs.AddVirtual("test.s", []byte("li a0, 1\nli a0, 2"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},  // 'l'
		{7, LineCol{Line: 1, Col: 8}},  // '1'
		{8, LineCol{Line: 1, Col: 9}},  // сам '\n' — последняя колонка строки 1
		{9, LineCol{Line: 2, Col: 1}},  // 'l' второй строки
		{16, LineCol{Line: 2, Col: 8}}, // '2'
	}

	for _, tt := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Offset %d: expected %d:%d, got %d:%d",
				tt.off, tt.want.Line, tt.want.Col, start.Line, start.Col)
		}
	}
}

// TestGetLine проверяет извлечение строк по 1-based номеру
func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.s", []byte("li a0, 1\nli a0, 2\n"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "li a0, 1" {
		t.Errorf("Line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "li a0, 2" {
		t.Errorf("Line 2: got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("Line 0: expected empty, got %q", got)
	}
	if got := f.GetLine(99); got != "" {
		t.Errorf("Line 99: expected empty, got %q", got)
	}
}

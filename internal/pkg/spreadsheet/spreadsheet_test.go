package spreadsheet

import (
	"testing"
)

func TestWriteParseRoundTrip(t *testing.T) {
	headers := []string{"No", "Nama Lengkap", "NISN"}
	rows := [][]string{
		{"1", "Budi Santoso", "1234567890"},
		{"2", "Siti Aminah", "0987654321"},
	}

	data, err := Write(headers, rows)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(sheet.Headers) != len(headers) {
		t.Fatalf("got %d headers, want %d", len(sheet.Headers), len(headers))
	}
	for i, h := range headers {
		if sheet.Headers[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, sheet.Headers[i], h)
		}
	}

	if len(sheet.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(sheet.Rows))
	}
	if got := sheet.Rows[0].Get("Nama Lengkap"); got != "Budi Santoso" {
		t.Errorf("row 0 name = %q, want %q", got, "Budi Santoso")
	}
	if got := sheet.Rows[1].Get("NISN"); got != "0987654321" {
		t.Errorf("row 1 NISN = %q, want %q", got, "0987654321")
	}
}

func TestParseSkipsEmptyRows(t *testing.T) {
	headers := []string{"No", "Nama Lengkap"}
	rows := [][]string{
		{"1", "Budi Santoso"},
		{"", ""},
		{"2", "Siti Aminah"},
	}

	data, err := Write(headers, rows)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(sheet.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row should be dropped)", len(sheet.Rows))
	}
}

func TestParseShortRowsReadEmpty(t *testing.T) {
	headers := []string{"No", "Nama Lengkap", "Alamat"}
	rows := [][]string{
		{"1", "Budi Santoso"},
	}

	data, err := Write(headers, rows)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(sheet.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(sheet.Rows))
	}
	if got := sheet.Rows[0].Get("Alamat"); got != "" {
		t.Errorf("missing cell = %q, want empty string", got)
	}
}

func TestParseTrimsHeaderWhitespace(t *testing.T) {
	headers := []string{" No ", "Nama Lengkap", " NIK"}
	rows := [][]string{
		{"1", "Budi Santoso", "3171234567890001"},
	}

	data, err := Write(headers, rows)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"No", "Nama Lengkap", "NIK"}
	for i, h := range want {
		if sheet.Headers[i] != h {
			t.Errorf("header[%d] = %q, want trimmed %q", i, sheet.Headers[i], h)
		}
	}
	if got := sheet.Rows[0].Get("NIK"); got != "3171234567890001" {
		t.Errorf("padded-header cell = %q, want value reachable by trimmed label", got)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	data, err := Write([]string{"No", "Nama Lengkap"}, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	sheet, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sheet.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(sheet.Rows))
	}
	if len(sheet.Headers) != 2 {
		t.Errorf("got %d headers, want 2", len(sheet.Headers))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("this is not a zip archive")); err == nil {
		t.Fatal("Parse() of non-xlsx bytes should fail")
	}
}

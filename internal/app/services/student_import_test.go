package services

import (
	"strings"
	"testing"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/pkg/spreadsheet"
)

func buildImportFile(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()
	data, err := spreadsheet.Write(headers, rows)
	if err != nil {
		t.Fatalf("building test file: %v", err)
	}
	return data
}

// rowWith returns a full-width data row with the named columns set.
func rowWith(t *testing.T, values map[string]string) []string {
	t.Helper()
	row := make([]string, len(ImportHeaders))
	for col, v := range values {
		found := false
		for i, h := range ImportHeaders {
			if h == col {
				row[i] = v
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unknown column %q", col)
		}
	}
	return row
}

func newValidator() StudentImportService {
	return NewStudentImportService(nil, nil)
}

func TestTemplateHeaders(t *testing.T) {
	data, err := newValidator().Template()
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	sheet, err := spreadsheet.Parse(data)
	if err != nil {
		t.Fatalf("parsing template: %v", err)
	}

	if len(sheet.Headers) != len(ImportHeaders) {
		t.Fatalf("template has %d headers, want %d", len(sheet.Headers), len(ImportHeaders))
	}
	for i, want := range ImportHeaders {
		if sheet.Headers[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, sheet.Headers[i], want)
		}
	}
	if len(sheet.Rows) != 0 {
		t.Errorf("template has %d data rows, want 0", len(sheet.Rows))
	}
}

func TestValidateCleanRow(t *testing.T) {
	data := buildImportFile(t, ImportHeaders, [][]string{
		rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso", "Tingkat - Rombel": "10-A"}),
	})

	batch := newValidator().Validate(data, "school-1")

	if !batch.Clean() {
		t.Fatalf("batch rejected, errors: %v", batch.Errors)
	}
	if len(batch.Candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(batch.Candidates))
	}

	got := batch.Candidates[0]
	if got.Name != "Budi Santoso" {
		t.Errorf("name = %q, want %q", got.Name, "Budi Santoso")
	}
	if got.Class != "10-A" {
		t.Errorf("class = %q, want %q", got.Class, "10-A")
	}
	if got.Status != models.StatusActive {
		t.Errorf("status = %q, want %q", got.Status, models.StatusActive)
	}
	if got.SchoolID != "school-1" {
		t.Errorf("schoolID = %q, want %q", got.SchoolID, "school-1")
	}
	if got.NISN != "" || got.Address != "" || got.DateOfBirth != nil {
		t.Errorf("blank cells should stay empty, got NISN=%q address=%q dob=%v", got.NISN, got.Address, got.DateOfBirth)
	}
}

func TestValidateMissingColumn(t *testing.T) {
	headers := make([]string, len(ImportHeaders))
	copy(headers, ImportHeaders)
	for i, h := range headers {
		if h == "NIK" {
			headers[i] = "NIK2"
		}
	}
	data := buildImportFile(t, headers, [][]string{
		rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso"}),
	})

	batch := newValidator().Validate(data, "school-1")

	if batch.Clean() {
		t.Fatal("batch with a renamed required column should be rejected")
	}
	if batch.TotalErrors != 1 || len(batch.Errors) != 1 {
		t.Fatalf("want exactly one structural error, got %d (%v)", batch.TotalErrors, batch.Errors)
	}
	if !strings.Contains(batch.Errors[0].Message, "missing columns") || !strings.Contains(batch.Errors[0].Message, "NIK") {
		t.Errorf("structural error should list NIK as missing, got %q", batch.Errors[0].Message)
	}
	if len(batch.Candidates) != 0 {
		t.Errorf("rejected batch must have 0 candidates, got %d", len(batch.Candidates))
	}
}

func TestValidateHeaderOrderInsensitive(t *testing.T) {
	headers := make([]string, len(ImportHeaders))
	copy(headers, ImportHeaders)
	// Swap a few columns around; presence is what matters
	headers[1], headers[17] = headers[17], headers[1]
	headers[2], headers[9] = headers[9], headers[2]

	row := make([]string, len(headers))
	for i, h := range headers {
		if h == "Nama Lengkap" {
			row[i] = "Siti Aminah"
		}
	}

	batch := newValidator().Validate(buildImportFile(t, headers, [][]string{row}), "school-1")

	if !batch.Clean() {
		t.Fatalf("shuffled headers should still validate, errors: %v", batch.Errors)
	}
	if len(batch.Candidates) != 1 || batch.Candidates[0].Name != "Siti Aminah" {
		t.Fatalf("candidate not mapped through shuffled headers: %+v", batch.Candidates)
	}
}

func TestValidatePaddedHeadersKeepCellData(t *testing.T) {
	headers := make([]string, len(ImportHeaders))
	copy(headers, ImportHeaders)
	for i, h := range headers {
		if h == "NIK" {
			headers[i] = " NIK "
		}
	}
	data := buildImportFile(t, headers, [][]string{
		rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso", "NIK": "3171234567890001"}),
	})

	batch := newValidator().Validate(data, "school-1")

	if !batch.Clean() {
		t.Fatalf("padded header should still validate, errors: %v", batch.Errors)
	}
	if got := batch.Candidates[0].NIK; got != "3171234567890001" {
		t.Errorf("NIK = %q, want the padded column's data preserved", got)
	}
}

func TestValidateRowRules(t *testing.T) {
	tests := []struct {
		name        string
		row         map[string]string
		wantRow     int
		wantMessage string
	}{
		{
			name:        "empty name",
			row:         map[string]string{"Tingkat - Rombel": "10-A"},
			wantRow:     2,
			wantMessage: "Nama Lengkap is required",
		},
		{
			name:        "whitespace name",
			row:         map[string]string{"Nama Lengkap": "   "},
			wantRow:     2,
			wantMessage: "Nama Lengkap is required",
		},
		{
			name:        "unparseable date of birth",
			row:         map[string]string{"Nama Lengkap": "Budi Santoso", "Tanggal Lahir": "kemarin"},
			wantRow:     2,
			wantMessage: "invalid date of birth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildImportFile(t, ImportHeaders, [][]string{rowWith(t, tt.row)})
			batch := newValidator().Validate(data, "school-1")

			if batch.Clean() {
				t.Fatal("row should have been rejected")
			}
			if len(batch.Candidates) != 0 {
				t.Errorf("rejected batch must discard candidates, got %d", len(batch.Candidates))
			}
			if batch.Errors[0].Row != tt.wantRow {
				t.Errorf("error row = %d, want %d", batch.Errors[0].Row, tt.wantRow)
			}
			if !strings.Contains(batch.Errors[0].Message, tt.wantMessage) {
				t.Errorf("error message = %q, want it to contain %q", batch.Errors[0].Message, tt.wantMessage)
			}
		})
	}
}

func TestValidateRowNumbersCountFromTwo(t *testing.T) {
	data := buildImportFile(t, ImportHeaders, [][]string{
		rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso"}),
		rowWith(t, map[string]string{"Tingkat - Rombel": "10-A"}), // bad: no name
		rowWith(t, map[string]string{"Nama Lengkap": "Siti Aminah"}),
	})

	batch := newValidator().Validate(data, "school-1")

	if batch.TotalErrors != 1 {
		t.Fatalf("want 1 error, got %d (%v)", batch.TotalErrors, batch.Errors)
	}
	if batch.Errors[0].Row != 3 {
		t.Errorf("second data row should be reported as row 3, got %d", batch.Errors[0].Row)
	}
}

func TestValidateNIKApostropheStripped(t *testing.T) {
	data := buildImportFile(t, ImportHeaders, [][]string{
		rowWith(t, map[string]string{
			"Nama Lengkap": "Budi Santoso",
			"NIK":          "'3171234567890001",
			"NISN":         "'0051234567",
		}),
	})

	batch := newValidator().Validate(data, "school-1")

	if !batch.Clean() {
		t.Fatalf("batch rejected, errors: %v", batch.Errors)
	}
	if got := batch.Candidates[0].NIK; got != "3171234567890001" {
		t.Errorf("NIK = %q, want leading apostrophe stripped", got)
	}
	if got := batch.Candidates[0].NISN; got != "0051234567" {
		t.Errorf("NISN = %q, want leading apostrophe stripped", got)
	}
}

func TestValidateStatusNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want models.StudentStatus
	}{
		{"Tidak Aktif", models.StatusInactive},
		{"", models.StatusActive},
		{"Aktif", models.StatusActive},
		{"aktif", models.StatusActive},
		{"tidak aktif", models.StatusActive}, // only the exact label deactivates
	}

	for _, tt := range tests {
		t.Run("status "+tt.raw, func(t *testing.T) {
			data := buildImportFile(t, ImportHeaders, [][]string{
				rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso", "Status": tt.raw}),
			})
			batch := newValidator().Validate(data, "school-1")
			if !batch.Clean() {
				t.Fatalf("batch rejected, errors: %v", batch.Errors)
			}
			if got := batch.Candidates[0].Status; got != tt.want {
				t.Errorf("status %q normalized to %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateDateLayouts(t *testing.T) {
	tests := []struct {
		cell string
		want string // YYYY-MM-DD
	}{
		{"2012-04-21", "2012-04-21"},
		{"21/04/2012", "2012-04-21"},
		{"2012/04/21", "2012-04-21"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			data := buildImportFile(t, ImportHeaders, [][]string{
				rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso", "Tanggal Lahir": tt.cell}),
			})
			batch := newValidator().Validate(data, "school-1")
			if !batch.Clean() {
				t.Fatalf("batch rejected, errors: %v", batch.Errors)
			}
			dob := batch.Candidates[0].DateOfBirth
			if dob == nil {
				t.Fatal("date of birth not parsed")
			}
			if got := dob.Format("2006-01-02"); got != tt.want {
				t.Errorf("parsed %q as %s, want %s", tt.cell, got, tt.want)
			}
		})
	}
}

func TestValidateErrorCap(t *testing.T) {
	rows := make([][]string, 7)
	for i := range rows {
		rows[i] = rowWith(t, map[string]string{"Tingkat - Rombel": "10-A"}) // all missing names
	}
	data := buildImportFile(t, ImportHeaders, rows)

	batch := newValidator().Validate(data, "school-1")

	if len(batch.Errors) != maxReportedRowErrors {
		t.Errorf("reported errors = %d, want cap of %d", len(batch.Errors), maxReportedRowErrors)
	}
	if batch.TotalErrors != 7 {
		t.Errorf("total errors = %d, want 7", batch.TotalErrors)
	}
}

func TestValidateUnreadableFile(t *testing.T) {
	batch := newValidator().Validate([]byte("not an xlsx payload"), "school-1")

	if batch.Clean() {
		t.Fatal("garbage bytes should produce a rejected batch")
	}
	if batch.TotalErrors != 1 {
		t.Errorf("want a single parse error, got %d", batch.TotalErrors)
	}
	if len(batch.Candidates) != 0 {
		t.Errorf("rejected batch must have 0 candidates, got %d", len(batch.Candidates))
	}
}

func TestValidateIdempotent(t *testing.T) {
	data := buildImportFile(t, ImportHeaders, [][]string{
		rowWith(t, map[string]string{"Nama Lengkap": "Budi Santoso"}),
		rowWith(t, map[string]string{"Tingkat - Rombel": "10-A"}),
	})

	v := newValidator()
	first := v.Validate(data, "school-1")
	second := v.Validate(data, "school-1")

	if first.TotalErrors != second.TotalErrors || len(first.Errors) != len(second.Errors) {
		t.Errorf("validation not stable: %+v vs %+v", first, second)
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		school string
		class  string
		want   string
	}{
		{"SD Negeri 1 Menteng", "10-A", "data_siswa_sd_negeri_1_menteng_10_a.xlsx"},
		{"SMA Harapan", "", "data_siswa_sma_harapan_semua_kelas.xlsx"},
		{"SMP/MTs Al-Ikhlas", "VII B", "data_siswa_smp_mts_al_ikhlas_vii_b.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := exportFileName(tt.school, tt.class); got != tt.want {
				t.Errorf("exportFileName(%q, %q) = %q, want %q", tt.school, tt.class, got, tt.want)
			}
		})
	}
}

func TestExportHeadersOmitAge(t *testing.T) {
	if len(ExportHeaders) != len(ImportHeaders)-1 {
		t.Fatalf("export headers = %d columns, want %d", len(ExportHeaders), len(ImportHeaders)-1)
	}
	for _, h := range ExportHeaders {
		if h == colAge {
			t.Fatal("export headers must not include Umur")
		}
	}
}

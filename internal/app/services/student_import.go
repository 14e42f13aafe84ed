package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adityar/sekolahku/internal/app/models"
	"github.com/adityar/sekolahku/internal/app/repositories"
	"github.com/adityar/sekolahku/internal/pkg/apperrors"
	"github.com/adityar/sekolahku/internal/pkg/helpers"
	"github.com/adityar/sekolahku/internal/pkg/spreadsheet"
	"github.com/adityar/sekolahku/internal/pkg/validation"
)

// Spreadsheet column labels. Upload validation checks presence, not position;
// template and export emit them in exactly this order.
const (
	colNo           = "No"
	colName         = "Nama Lengkap"
	colNISN         = "NISN"
	colNIK          = "NIK"
	colBirthPlace   = "Tempat Lahir"
	colDateOfBirth  = "Tanggal Lahir"
	colClass        = "Tingkat - Rombel"
	colAge          = "Umur"
	colStatus       = "Status"
	colGender       = "Jenis Kelamin"
	colAddress      = "Alamat"
	colPhone        = "No Telepon"
	colSpecialNeeds = "Kebutuhan Khusus"
	colDisability   = "Disabilitas"
	colKIPPIP       = "Nomor KIP/PIP"
	colFatherName   = "Nama Ayah Kandung"
	colMotherName   = "Nama Ibu Kandung"
	colGuardianName = "Nama Wali"
)

// ImportHeaders is the fixed 18-column header row of the import template.
var ImportHeaders = []string{
	colNo, colName, colNISN, colNIK, colBirthPlace, colDateOfBirth, colClass,
	colAge, colStatus, colGender, colAddress, colPhone, colSpecialNeeds,
	colDisability, colKIPPIP, colFatherName, colMotherName, colGuardianName,
}

// ExportHeaders is the export column set: the import template minus Umur,
// which is derived for display and never stored.
var ExportHeaders = []string{
	colNo, colName, colNISN, colNIK, colBirthPlace, colDateOfBirth, colClass,
	colStatus, colGender, colAddress, colPhone, colSpecialNeeds,
	colDisability, colKIPPIP, colFatherName, colMotherName, colGuardianName,
}

// TemplateFileName is the download name of the import template.
const TemplateFileName = "template_import_siswa.xlsx"

// maxReportedRowErrors caps the error list surfaced to the operator; the
// total count is still reported so the UI can say "and N more".
const maxReportedRowErrors = 5

// RowError is one validation failure bound to a 1-based spreadsheet row
// number (the header is row 1, so the first data row is 2).
type RowError struct {
	Row     int
	Message string
}

// ImportBatch is the ephemeral result of validating one uploaded file. A
// clean batch has zero errors and a candidate per data row; a rejected batch
// keeps its errors for correction feedback and is never committed.
type ImportBatch struct {
	SchoolID    string
	Candidates  []*models.Student
	Errors      []RowError
	TotalErrors int
}

// Clean reports whether the batch may be committed.
func (b *ImportBatch) Clean() bool {
	return b.TotalErrors == 0
}

func (b *ImportBatch) addError(row int, message string) {
	if len(b.Errors) < maxReportedRowErrors {
		b.Errors = append(b.Errors, RowError{Row: row, Message: message})
	}
	b.TotalErrors++
}

// StudentImportService defines the import/export pipeline operations
type StudentImportService interface {
	Template() ([]byte, error)
	Validate(data []byte, schoolID string) *ImportBatch
	Import(ctx context.Context, schoolID string, data []byte, dryRun bool) (*ImportBatch, error)
	Export(ctx context.Context, schoolID, class string) ([]byte, string, error)
}

// studentImportServiceImpl implements the StudentImportService interface
type studentImportServiceImpl struct {
	studentRepo *repositories.StudentRepository
	schoolRepo  *repositories.SchoolRepository
}

// NewStudentImportService creates a new student import service instance
func NewStudentImportService(studentRepo *repositories.StudentRepository, schoolRepo *repositories.SchoolRepository) StudentImportService {
	return &studentImportServiceImpl{
		studentRepo: studentRepo,
		schoolRepo:  schoolRepo,
	}
}

// Template produces the downloadable import template: one header row, no data.
func (s *studentImportServiceImpl) Template() ([]byte, error) {
	return spreadsheet.Write(ImportHeaders, nil)
}

// Validate parses and validates an uploaded file without touching storage.
// It never fails: unreadable files and structural problems come back as a
// rejected batch. Calling it twice with the same bytes gives the same result.
func (s *studentImportServiceImpl) Validate(data []byte, schoolID string) *ImportBatch {
	batch := &ImportBatch{SchoolID: schoolID}

	sheet, err := spreadsheet.Parse(data)
	if err != nil {
		batch.addError(0, "file could not be read as a spreadsheet")
		return batch
	}

	if missing := missingColumns(sheet.Headers); len(missing) > 0 {
		// Structural failure: no row-level validation is attempted
		batch.addError(0, "missing columns: "+strings.Join(missing, ", "))
		return batch
	}

	for i, row := range sheet.Rows {
		rowNum := i + 2 // header occupies row 1
		student, errs := s.buildStudent(row, schoolID)
		if len(errs) > 0 {
			for _, msg := range errs {
				batch.addError(rowNum, msg)
			}
			continue
		}
		batch.Candidates = append(batch.Candidates, student)
	}

	if !batch.Clean() {
		// Rejected batches never reach commit
		batch.Candidates = nil
	}

	return batch
}

// missingColumns returns required headers absent from the parsed header row.
// Column order and extra columns are ignored. Labels arrive already trimmed
// from the parser.
func missingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, required := range ImportHeaders {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

// buildStudent maps one untyped spreadsheet row onto a typed student record,
// returning validation messages when the row must be rejected.
func (s *studentImportServiceImpl) buildStudent(row spreadsheet.Row, schoolID string) (*models.Student, []string) {
	var errs []string

	name := strings.TrimSpace(row.Get(colName))
	if name == "" {
		errs = append(errs, colName+" is required")
	}

	dob, ok := parseSheetDate(row.Get(colDateOfBirth))
	if !ok {
		errs = append(errs, "invalid date of birth")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Student{
		SchoolID:     schoolID,
		Name:         name,
		NISN:         strings.TrimSpace(validation.StripTextMarker(row.Get(colNISN))),
		NIK:          strings.TrimSpace(validation.StripTextMarker(row.Get(colNIK))),
		BirthPlace:   strings.TrimSpace(row.Get(colBirthPlace)),
		DateOfBirth:  dob,
		Class:        strings.TrimSpace(row.Get(colClass)),
		Status:       models.NormalizeStatus(row.Get(colStatus)),
		Gender:       models.Gender(strings.TrimSpace(row.Get(colGender))),
		Address:      strings.TrimSpace(row.Get(colAddress)),
		Phone:        strings.TrimSpace(validation.StripTextMarker(row.Get(colPhone))),
		SpecialNeeds: strings.TrimSpace(row.Get(colSpecialNeeds)),
		Disability:   strings.TrimSpace(row.Get(colDisability)),
		KIPPIPNumber: strings.TrimSpace(validation.StripTextMarker(row.Get(colKIPPIP))),
		FatherName:   strings.TrimSpace(row.Get(colFatherName)),
		MotherName:   strings.TrimSpace(row.Get(colMotherName)),
		GuardianName: strings.TrimSpace(row.Get(colGuardianName)),
	}, nil
}

// sheetDateLayouts are the textual date shapes accepted in date cells, on top
// of raw Excel serial numbers.
var sheetDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"01-02-06",
	"2006/01/02",
}

// parseSheetDate interprets a date cell. An empty cell is valid and yields a
// nil date; a non-empty cell that matches no known shape marks the row invalid.
func parseSheetDate(cell string) (*time.Time, bool) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return nil, true
	}

	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}

	// Date cells read without a format come through as Excel serial numbers
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return &t, true
		}
	}

	return nil, false
}

// Import validates the upload and, for a clean batch, commits every candidate
// and the school's +N counter delta in one transaction. With dryRun set the
// commit phase is skipped regardless of the outcome.
func (s *studentImportServiceImpl) Import(ctx context.Context, schoolID string, data []byte, dryRun bool) (*ImportBatch, error) {
	if _, err := s.schoolRepo.GetSchoolByID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	batch := s.Validate(data, schoolID)
	if !batch.Clean() || dryRun {
		return batch, nil
	}

	if len(batch.Candidates) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyBatch, "file contains no data rows")
	}

	if err := s.studentRepo.BulkCreate(ctx, schoolID, batch.Candidates); err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.NewCustomError(apperrors.ErrStorageFailure, "could not commit import batch")
	}

	return batch, nil
}

// Export renders a school's students (optionally one class) as a spreadsheet
// in listing order, returning the file bytes and a sanitized download name.
func (s *studentImportServiceImpl) Export(ctx context.Context, schoolID, class string) ([]byte, string, error) {
	school, err := s.schoolRepo.GetSchoolByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, "", apperrors.ErrSchoolNotFound
		}
		return nil, "", fmt.Errorf("error retrieving school: %w", err)
	}

	students, err := s.studentRepo.GetAllStudents(ctx, schoolID, class)
	if err != nil {
		return nil, "", fmt.Errorf("error retrieving students for export: %w", err)
	}

	rows := make([][]string, 0, len(students))
	for i, student := range students {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			student.Name,
			student.NISN,
			student.NIK,
			student.BirthPlace,
			helpers.FormatDate(student.DateOfBirth),
			student.Class,
			string(student.Status),
			string(student.Gender),
			student.Address,
			student.Phone,
			student.SpecialNeeds,
			student.Disability,
			student.KIPPIPNumber,
			student.FatherName,
			student.MotherName,
			student.GuardianName,
		})
	}

	data, err := spreadsheet.Write(ExportHeaders, rows)
	if err != nil {
		return nil, "", fmt.Errorf("error writing export file: %w", err)
	}

	return data, exportFileName(school.Name, class), nil
}

// exportFileName builds data_siswa_<school>_<class>.xlsx with both parts
// lowercased and non-alphanumerics collapsed to underscores.
func exportFileName(schoolName, class string) string {
	if strings.TrimSpace(class) == "" {
		class = "semua kelas"
	}
	return fmt.Sprintf("data_siswa_%s_%s.xlsx", sanitizeFilePart(schoolName), sanitizeFilePart(class))
}

func sanitizeFilePart(part string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(part)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

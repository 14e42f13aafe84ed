package services

// Services defined in this package:
// - AuthService: login, token refresh, profile for console users
// - SchoolService: school CRUD and the dashboard totals
// - StudentService: student CRUD within a school
// - StudentImportService: template download, upload validation, bulk commit, export
// - TeacherService: teacher CRUD within a school

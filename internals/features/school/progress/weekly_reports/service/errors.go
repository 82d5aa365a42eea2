// file: internals/features/school/progress/weekly_reports/service/errors.go
package service

import "github.com/gofiber/fiber/v2"

// Taksonomi error engine laporan mingguan.
// Dipakai sebagai sentinel *fiber.Error supaya controller tinggal
// meneruskan lewat helper.FromFiberError. Error dependency (I/O store)
// TIDAK di sini — dibungkus fmt.Errorf("...: %w", err) dan jatuh ke 500.
var (
	// Validation — parameter identitas belum lengkap, ditolak sebelum hitung.
	ErrStudentIDRequired   = fiber.NewError(fiber.StatusBadRequest, "student_id wajib diisi")
	ErrClassRoomIDRequired = fiber.NewError(fiber.StatusBadRequest, "class_room_id wajib diisi")
	ErrWeekOutOfRange      = fiber.NewError(fiber.StatusBadRequest, "week_number harus 1..53 dan year wajib diisi")

	// Precondition — fatal hanya untuk siswa ybs.
	ErrNoActiveEnrollment = fiber.NewError(fiber.StatusUnprocessableEntity, "siswa tidak memiliki enrolment kelas aktif")

	// Conflict — kalah balapan generate utk (siswa, minggu, tahun) yang sama.
	// Retryable: panggil ulang dan guard idempoten akan mengembalikan laporan yang sudah jadi.
	ErrDuplicateGeneration = fiber.NewError(fiber.StatusConflict, "laporan minggu ini sedang dibuat proses lain, silakan coba lagi")

	ErrReportNotFound = fiber.NewError(fiber.StatusNotFound, "laporan tidak ditemukan")
)

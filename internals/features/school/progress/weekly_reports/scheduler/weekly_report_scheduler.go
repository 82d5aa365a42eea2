// file: internals/features/school/progress/weekly_reports/scheduler/weekly_report_scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/progress/weekly_reports/repository"
	"sekolahku_backend/internals/features/school/progress/weekly_reports/service"
)

// StartWeeklyReportScheduler jalanin rekap mingguan di background.
// Trigger: Senin jam 06:00 — merekap minggu ISO yang baru saja selesai.
// Clock di-inject supaya perhitungan minggu bisa dites deterministik.
func StartWeeklyReportScheduler(db *gorm.DB, clock service.Clock) {
	if clock == nil {
		clock = time.Now
	}
	svc := service.NewWeeklyReportService(repository.NewGormStore(db), clock)

	go func() {
		log.Println("[SCHEDULER] Weekly report scheduler aktif (Senin 06:00)")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastRunKey string
		for range ticker.C {
			now := clock()
			if now.Weekday() != time.Monday || now.Hour() != 6 {
				continue
			}

			year, week := service.PreviousISOWeek(now)
			key := fmt.Sprintf("%d-W%02d", year, week)
			if key == lastRunKey {
				continue // sudah jalan utk minggu ini
			}

			// key baru dicatat setelah run berhasil menyentuh daftar kelas;
			// gagal total → dicoba lagi di tick berikutnya selama masih jam 06
			if _, _, err := RunWeeklyGeneration(context.Background(), svc, year, week); err != nil {
				continue
			}
			lastRunKey = key
		}
	}()
}

// RunWeeklyGeneration bulk-generate laporan utk semua kelas yang punya
// enrolment aktif. Kegagalan satu kelas dicatat dan TIDAK menghentikan
// kelas berikutnya; return total sukses/gagal per siswa. Error non-nil
// hanya kalau daftar kelas sendiri gagal diambil (run belum mulai).
func RunWeeklyGeneration(ctx context.Context, svc *service.WeeklyReportService, year, week int) (succeeded, failed int, err error) {
	log.Printf("[SCHEDULER] Mulai generate laporan mingguan %d-W%02d...", year, week)

	classIDs, err := svc.ClassRoomsWithCurrentEnrollments(ctx)
	if err != nil {
		log.Printf("[SCHEDULER ERROR] Gagal ambil daftar kelas: %v", err)
		return 0, 0, err
	}

	for _, classID := range classIDs {
		results, err := svc.BulkGenerate(ctx, classID, week, year, nil)
		if err != nil {
			// kelas ini gagal total (mis. store error) — lanjut kelas berikutnya
			log.Printf("[SCHEDULER ERROR] Kelas %s gagal: %v", classID, err)
			continue
		}
		for _, r := range results {
			if r.Success {
				succeeded++
			} else {
				failed++
				log.Printf("[SCHEDULER] Siswa %s gagal: %s", r.StudentID, r.Error)
			}
		}
	}

	log.Printf("[SCHEDULER] Selesai %d-W%02d: %d sukses, %d gagal", year, week, succeeded, failed)
	return succeeded, failed, nil
}

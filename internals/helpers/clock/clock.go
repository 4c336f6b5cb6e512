// file: internals/helpers/clock/clock.go
package clock

import (
	"log"
	"strings"
	"sync"
	"time"
)

// Layout timestamp yang dipakai di seluruh record visitor
// (created_at, check_in, check_out). Format ini ikut kontrak lama
// dan tampil apa adanya di gate pass yang dicetak.
const Layout = "2006-01-02 15:04:05"

var (
	mu  sync.RWMutex
	loc = time.UTC
)

// Init set lokasi aplikasi dari nama timezone (mis. "Asia/Jakarta").
// 1) Coba LoadLocation(nama)
// 2) Fallback: Asia/Jakarta
// 3) Fallback terakhir: time.UTC
func Init(tz string) {
	tz = strings.TrimSpace(tz)
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			setLocation(l)
			return
		}
		log.Printf("⚠️ Timezone %q tidak dikenal, fallback ke Asia/Jakarta", tz)
	}
	if l, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		setLocation(l)
		return
	}
	setLocation(time.UTC)
}

func setLocation(l *time.Location) {
	mu.Lock()
	loc = l
	mu.Unlock()
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

// Now = waktu sekarang di timezone aplikasi.
func Now() time.Time {
	return time.Now().In(Location())
}

// Timestamp format waktu sekarang sesuai Layout.
func Timestamp() string {
	return Now().Format(Layout)
}

// IsToday cek apakah timestamp string jatuh pada tanggal hari ini.
// String kosong / format rusak dianggap bukan hari ini, bukan error.
func IsToday(ts string) bool {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return false
	}
	t, err := time.ParseInLocation(Layout, ts, Location())
	if err != nil {
		return false
	}
	now := Now()
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

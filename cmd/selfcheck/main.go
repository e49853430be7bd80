// Command selfcheck exercises the data store against a throwaway data
// directory: registration and login, repeat-mask round-trips, the
// notification cap, rename-mapping collapse, and timer decay.
// Usage: go run cmd/selfcheck/main.go [-dir path]
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/techhome/techhome/internal/auth"
	"github.com/techhome/techhome/internal/config"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/database/renames"
	"github.com/techhome/techhome/internal/database/timers"
	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

func main() {
	dir := flag.String("dir", "", "data directory to check against (default: temporary)")
	flag.Parse()

	dataDir := *dir
	if dataDir == "" {
		tmp, err := os.MkdirTemp("", "techhome-selfcheck-")
		if err != nil {
			log.Fatalf("Failed to create temporary directory: %v", err)
		}
		defer os.RemoveAll(tmp)
		dataDir = tmp
	}

	log.Printf("Running self-check against %s...", dataDir)

	mgr := userdb.NewManager(dataDir)
	cfg := config.NewConfig()
	svc := auth.NewService(mgr, cfg.Auth)

	checkCredentials(svc)
	checkRepeatMask()
	checkNotificationCap(mgr)
	checkRenameCollapse(mgr)
	checkTimerDecay(mgr)

	log.Println("Self-check passed")
}

func checkCredentials(svc *auth.Service) {
	if err := svc.CreateUser("  ", "secret"); !errors.Is(err, auth.ErrBlankCredentials) {
		log.Fatalf("Blank username accepted: %v", err)
	}
	if err := svc.CreateUser("selfcheck", "correct horse battery"); err != nil {
		log.Fatalf("Registration failed: %v", err)
	}
	if err := svc.CreateUser("selfcheck", "another password"); !errors.Is(err, auth.ErrUserExists) {
		log.Fatalf("Duplicate registration not rejected: %v", err)
	}
	if err := svc.Authenticate("selfcheck", "correct horse battery"); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	if err := svc.Authenticate("selfcheck", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		log.Fatalf("Wrong password accepted: %v", err)
	}
	log.Println("Credentials: ok")
}

func checkRepeatMask() {
	days := entities.NewRepeatDaySet(time.Monday, time.Wednesday)
	mask := entities.EncodeRepeatDays(days)
	if mask != "0101000" {
		log.Fatalf("Unexpected repeat mask: %s", mask)
	}
	decoded := entities.DecodeRepeatDays(mask)
	if len(decoded) != 2 {
		log.Fatalf("Repeat mask round-trip failed: %v", decoded)
	}
	if len(entities.DecodeRepeatDays("invalid")) != 0 {
		log.Fatalf("Invalid mask did not decode to empty set")
	}
	log.Println("Repeat mask: ok")
}

func checkNotificationCap(mgr *userdb.Manager) {
	const limit = 10
	repo := notifications.NewRepository(mgr, limit)
	for i := 0; i < limit+5; i++ {
		if err := repo.SaveNotification("selfcheck", "event"); err != nil {
			log.Fatalf("Failed to save notification: %v", err)
		}
	}
	items, err := repo.Notifications("selfcheck")
	if err != nil {
		log.Fatalf("Failed to load notifications: %v", err)
	}
	if len(items) != limit {
		log.Fatalf("Notification cap not enforced: %d rows", len(items))
	}
	log.Println("Notification cap: ok")
}

func checkRenameCollapse(mgr *userdb.Manager) {
	repo := renames.NewRepository(mgr)
	if err := repo.UpdateRenamedDevice("selfcheck", "Lamp A", "Lamp B"); err != nil {
		log.Fatalf("Rename failed: %v", err)
	}
	if err := repo.UpdateRenamedDevice("selfcheck", "Lamp B", "Lamp C"); err != nil {
		log.Fatalf("Rename failed: %v", err)
	}
	mapping, err := repo.RenamedDevices("selfcheck")
	if err != nil {
		log.Fatalf("Failed to load rename mapping: %v", err)
	}
	if len(mapping) != 1 || mapping["Lamp C"] != "Lamp A" {
		log.Fatalf("Rename chain did not collapse: %v", mapping)
	}
	log.Println("Rename collapse: ok")
}

func checkTimerDecay(mgr *userdb.Manager) {
	repo := timers.NewRepository(mgr)
	timer := &entities.Timer{
		Text:        "selfcheck",
		Duration:    30,
		Remaining:   30,
		Running:     true,
		LastStarted: time.Now().Add(-5 * time.Second),
		EndTime:     time.Now().Add(25 * time.Second),
	}
	if err := repo.SaveTimer("selfcheck", timer); err != nil {
		log.Fatalf("Failed to save timer: %v", err)
	}
	loaded, err := repo.Timers("selfcheck")
	if err != nil {
		log.Fatalf("Failed to load timers: %v", err)
	}
	if len(loaded) == 0 {
		log.Fatalf("Timer not persisted")
	}
	got := loaded[len(loaded)-1]
	if got.Remaining >= 30 || got.Remaining < 0 || !got.Running {
		log.Fatalf("Timer decay incorrect: remaining=%d running=%v", got.Remaining, got.Running)
	}
	log.Println("Timer decay: ok")
}

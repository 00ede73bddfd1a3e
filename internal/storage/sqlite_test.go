package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsBalance(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.Credit(150, "test"); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	balance, _ := store.Balance()
	if balance != InitialBalance+150 {
		t.Errorf("Balance() = %d after reopen, expected %d", balance, InitialBalance+150)
	}
}

func TestWalletCreditAndLedger(t *testing.T) {
	store := openTestStore(t)

	balance, err := store.Balance()
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if balance != InitialBalance {
		t.Errorf("initial Balance() = %d, expected %d", balance, InitialBalance)
	}

	w := store.Wallet("level:First Flight")
	if err := w.Credit(150); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}
	if err := w.Credit(100); err != nil {
		t.Fatalf("Credit() failed: %v", err)
	}

	balance, _ = store.Balance()
	if balance != InitialBalance+250 {
		t.Errorf("Balance() = %d, expected %d", balance, InitialBalance+250)
	}

	entries, err := store.Ledger(10)
	if err != nil {
		t.Fatalf("Ledger() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(Ledger()) = %d, expected 2", len(entries))
	}
	if entries[0].Amount != 100 || entries[0].BalanceAfter != InitialBalance+250 {
		t.Errorf("newest entry = %+v, expected +100 to %d", entries[0], InitialBalance+250)
	}
	if entries[1].Reason != "level:First Flight" {
		t.Errorf("Reason = %q, expected level:First Flight", entries[1].Reason)
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Errorf("ledger ids not unique: %q, %q", entries[0].ID, entries[1].ID)
	}
}

func TestWalletDebit(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Debit(400, "test"); err != nil {
		t.Fatalf("Debit() failed: %v", err)
	}
	_, err := store.Debit(InitialBalance, "test")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Debit() error = %v, expected ErrInsufficientFunds", err)
	}

	balance, _ := store.Balance()
	if balance != InitialBalance-400 {
		t.Errorf("Balance() = %d, expected %d", balance, InitialBalance-400)
	}
	if _, err := store.Credit(-1, "test"); err == nil {
		t.Error("Credit(-1) succeeded, expected error")
	}
}

func TestSkinsBuyAndSelect(t *testing.T) {
	store := openTestStore(t)

	owned, err := store.OwnedSkins()
	if err != nil {
		t.Fatalf("OwnedSkins() failed: %v", err)
	}
	if !owned[DefaultSkinID] || len(owned) != 1 {
		t.Errorf("OwnedSkins() = %v, expected only the default", owned)
	}

	if err := store.SelectSkin("red_baron"); !errors.Is(err, ErrSkinNotOwned) {
		t.Errorf("SelectSkin(unowned) error = %v, expected ErrSkinNotOwned", err)
	}

	bought, err := store.BuySkin("red_baron")
	if err != nil || !bought {
		t.Fatalf("BuySkin() = %v, %v, expected true, nil", bought, err)
	}
	bought, err = store.BuySkin("red_baron")
	if err != nil || bought {
		t.Errorf("second BuySkin() = %v, %v, expected false, nil", bought, err)
	}

	balance, _ := store.Balance()
	if balance != InitialBalance-500 {
		t.Errorf("Balance() = %d, expected %d", balance, InitialBalance-500)
	}

	// 500 left, the stealth skin costs 1000.
	if _, err := store.BuySkin("stealth"); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("BuySkin(stealth) error = %v, expected ErrInsufficientFunds", err)
	}
	if owned, _ := store.OwnedSkins(); owned["stealth"] {
		t.Error("failed purchase left the skin owned")
	}

	if _, err := store.BuySkin("jumbo"); !errors.Is(err, ErrUnknownSkin) {
		t.Errorf("BuySkin(unknown) error = %v, expected ErrUnknownSkin", err)
	}

	if id := store.SkinProvider().CurrentTokenSpriteID(); id != DefaultSkinID {
		t.Errorf("CurrentTokenSpriteID() = %q, expected %q", id, DefaultSkinID)
	}
	if err := store.SelectSkin("red_baron"); err != nil {
		t.Fatalf("SelectSkin() failed: %v", err)
	}
	if id := store.SkinProvider().CurrentTokenSpriteID(); id != "red_baron" {
		t.Errorf("CurrentTokenSpriteID() = %q, expected red_baron", id)
	}
}

func TestSessionsHistory(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{ID: "a", Level: 0, LevelName: "First Flight", Outcome: "lost", Stars: 0},
		{ID: "b", Level: 0, LevelName: "First Flight", Outcome: "won", Stars: 2, Coins: 100, Reward: 100},
		{ID: "c", Level: 1, LevelName: "Crosswind", Outcome: "won", Stars: 3, Coins: 150, Reward: 150, Duration: 12.5},
	}
	for _, r := range records {
		if err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession(%s) failed: %v", r.ID, err)
		}
	}
	// Duplicate ids are ignored.
	if err := store.SaveSession(records[0]); err != nil {
		t.Fatalf("SaveSession(duplicate) failed: %v", err)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len(RecentSessions()) = %d, expected 3", len(recent))
	}
	if recent[0].ID != "c" || recent[0].Duration != 12.5 {
		t.Errorf("newest session = %+v, expected c with 12.5s", recent[0])
	}

	bests, err := store.LevelBests()
	if err != nil {
		t.Fatalf("LevelBests() failed: %v", err)
	}
	if b := bests[0]; b.Plays != 2 || b.Wins != 1 || b.BestStars != 2 {
		t.Errorf("level 0 = %+v, expected 2 plays, 1 win, 2 stars", b)
	}
	if b := bests[1]; b.BestStars != 3 {
		t.Errorf("level 1 best stars = %d, expected 3", b.BestStars)
	}
}

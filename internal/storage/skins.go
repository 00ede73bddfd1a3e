package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/sky-memory/internal/session"
)

// DefaultSkinID is owned by every wallet and selected until another skin is.
const DefaultSkinID = session.DefaultSpriteID

const selectedSkinKey = "selected_skin"

// Skin is a cosmetic plane sprite sold in the shop.
type Skin struct {
	ID    string
	Name  string
	Price int
}

// Skins is the shop catalogue in display order.
var Skins = []Skin{
	{ID: DefaultSkinID, Name: "Default", Price: 0},
	{ID: "red_baron", Name: "Red Baron", Price: 500},
	{ID: "stealth", Name: "Stealth", Price: 1000},
	{ID: "bumblebee", Name: "Bumblebee", Price: 1500},
}

// SkinByID looks up a catalogue entry.
func SkinByID(id string) (Skin, bool) {
	for _, sk := range Skins {
		if sk.ID == id {
			return sk, true
		}
	}
	return Skin{}, false
}

// OwnedSkins returns the set of owned skin ids.
func (s *Store) OwnedSkins() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT skin_id FROM skins_owned")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	defer rows.Close()

	owned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		owned[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return owned, nil
}

// BuySkin debits the skin price and marks it owned. Buying an owned skin
// is a no-op and reports bought=false.
func (s *Store) BuySkin(id string) (bought bool, err error) {
	sk, ok := SkinByID(id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin purchase: %w", err)
	}
	defer tx.Rollback()

	var owned int
	if err := tx.QueryRow("SELECT COUNT(*) FROM skins_owned WHERE skin_id = ?", id).Scan(&owned); err != nil {
		return false, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	if owned > 0 {
		return false, nil
	}

	if _, _, err := debit(tx, sk.Price, "skin:"+sk.ID); err != nil {
		return false, err
	}
	if _, err := tx.Exec("INSERT INTO skins_owned (skin_id) VALUES (?)", id); err != nil {
		return false, fmt.Errorf("storage: cannot record skin: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit purchase: %w", err)
	}

	s.log.Info("skin bought", "skin", id, "price", sk.Price)
	return true, nil
}

// SelectSkin makes an owned skin the current one.
func (s *Store) SelectSkin(id string) error {
	if _, ok := SkinByID(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	owned, err := s.OwnedSkins()
	if err != nil {
		return err
	}
	if !owned[id] {
		return fmt.Errorf("%w: %q", ErrSkinNotOwned, id)
	}

	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		selectedSkinKey, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save selected skin: %w", err)
	}
	return nil
}

// SelectedSkin returns the current skin id.
func (s *Store) SelectedSkin() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", selectedSkinKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSkinID, nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read selected skin: %w", err)
	}
	return id, nil
}

// SkinProvider adapts the store to session.SkinProvider.
type SkinProvider struct {
	store *Store
}

// SkinProvider returns the session skin provider backed by the store.
func (s *Store) SkinProvider() SkinProvider {
	return SkinProvider{store: s}
}

// CurrentTokenSpriteID implements session.SkinProvider. A read failure
// falls back to the default sprite; skins never affect play.
func (p SkinProvider) CurrentTokenSpriteID() string {
	id, err := p.store.SelectedSkin()
	if err != nil {
		p.store.log.Warn("cannot read selected skin", "err", err)
		return DefaultSkinID
	}
	return id
}

var _ session.SkinProvider = SkinProvider{}

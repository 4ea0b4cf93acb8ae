package storage

import "fmt"

// WalletStore adapts the wallet table to the simulation's Wallet
// interface. The balance is cached in memory and written through on
// every mutation; write errors keep the cached value authoritative for
// the session so a transient disk problem cannot eat the player's
// coins mid-run.
type WalletStore struct {
	store *Store
	coins int
}

// Wallet loads the persistent coin balance.
func (s *Store) Wallet() (*WalletStore, error) {
	var coins int
	err := s.db.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load wallet: %w", err)
	}
	return &WalletStore{store: s, coins: coins}, nil
}

// Balance returns the current coin balance.
func (w *WalletStore) Balance() int {
	return w.coins
}

// Spend deducts coins if the balance covers the amount.
func (w *WalletStore) Spend(amount int) bool {
	if amount < 0 || amount > w.coins {
		return false
	}
	w.coins -= amount
	w.flush()
	return true
}

// Grant adds coins to the balance.
func (w *WalletStore) Grant(amount int) {
	if amount <= 0 {
		return
	}
	w.coins += amount
	w.flush()
}

func (w *WalletStore) flush() {
	w.store.db.Exec("UPDATE wallet SET coins = ? WHERE id = 1", w.coins) //nolint:errcheck
}

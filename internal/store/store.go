package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db     *sql.DB
	rounds *RoundStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     db,
		rounds: NewRoundStore(db),
	}
}

func (s *Store) Rounds() *RoundStore {
	return s.rounds
}

func (s *Store) Close() error {
	return s.db.Close()
}

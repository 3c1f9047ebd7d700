// Package repositories wires concrete repository implementations to a
// database handle. Services obtain repositories through the Manager so the
// same code path works on *sql.DB and inside a transaction.
package repositories

import (
	"skillswap/internal/dbx"
	"skillswap/internal/server/repositories/ratings"
	"skillswap/internal/server/repositories/swaps"
	"skillswap/internal/server/repositories/users"
)

// Manager hands out repositories bound to the given handle (a *sql.DB or a
// *sql.Tx via dbx.DBTX).
type Manager interface {
	Users(db dbx.DBTX) users.Repository
	Swaps(db dbx.DBTX) swaps.Repository
	Ratings(db dbx.DBTX) ratings.Repository
}

package repository

import "github.com/DeepakJD1226/Consultancy/internal/database"

// ErrRecordNotFound is returned by lookups and writes addressing a missing id.
var ErrRecordNotFound = database.ErrRecordNotFound

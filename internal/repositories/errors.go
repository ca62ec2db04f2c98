package repositories

import "errors"

// ErrNotFound is returned when a lookup resolves no record. Services
// translate it into their NotFound error; handlers into HTTP 404.
// Uniqueness violations are not declared here: GORM is opened with
// TranslateError enabled, so they surface as gorm.ErrDuplicatedKey
// regardless of the underlying driver.
var ErrNotFound = errors.New("record not found")

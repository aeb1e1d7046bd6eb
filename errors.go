package soa

import "errors"

var ErrDuplicateName = errors.New("duplicate column name")
var ErrTypeNotFound = errors.New("column type not found")
var ErrAmbiguousType = errors.New("column type is not unique")
var ErrNameNotFound = errors.New("column name not found")
var ErrSchemaMismatch = errors.New("schemas do not match")
var ErrCorrupt = errors.New("table is corrupt")

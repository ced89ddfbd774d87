package model

// Entity is the minimal contract a type must satisfy to be managed by a
// generic repository: a stable numeric identifier the storage layer can
// read and assign.
type Entity interface {
	EntityID() int64
	SetEntityID(id int64)
}

// SoftDeletable marks entity kinds whose deletion flips a flag instead of
// removing the row. Repositories check for this capability on delete;
// entity kinds without it are deleted physically.
type SoftDeletable interface {
	MarkDeleted()
	Deleted() bool
}

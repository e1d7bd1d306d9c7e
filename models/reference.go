package models

// Reference marks the categorical lookup entities (Genre, Publisher,
// Platform) that the reference synchronizer grows by name.
type Reference interface {
	ReferenceName() string
}

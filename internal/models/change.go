package models

// ChangeKind - вид изменения коллекции
type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeUpdated  ChangeKind = "updated"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeReplaced ChangeKind = "replaced"
)

// Change описывает мутацию хранилища; по нему оркестрация решает, что обновлять
type Change struct {
	Kind      ChangeKind `json:"kind"`
	RecordIDs []RecordID `json:"record_ids"`
	Total     int        `json:"total"`
}

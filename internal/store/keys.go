package store

import "encoding/json"

// Store keys. Collection snapshots are stored whole under these names; the
// task lists get one key per owner email.
const (
	KeyUsers       = "users"
	KeySessionUser = "sessionUser"
	KeyPosts       = "posts"

	tasksKeyPrefix = "tasks_"
)

// TasksKey returns the store key scoping a task list to one owner.
func TasksKey(ownerEmail string) string {
	return tasksKeyPrefix + ownerEmail
}

// DecodeList deserializes a collection snapshot. An absent or corrupt
// snapshot decodes to an empty list: the store predates any integrity
// checking and a value damaged by outside tampering is treated the same as
// missing data.
func DecodeList[T any](data []byte) []T {
	items := []T{}
	if len(data) == 0 {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	return items
}

// EncodeList serializes a collection snapshot.
func EncodeList[T any](items []T) ([]byte, error) {
	return json.Marshal(items)
}

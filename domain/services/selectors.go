package services

// Selectors make the target of a read or delete explicit rather than
// overloading zero values as "absent".

type ListSelectorKind int

const (
	ListSelectorAll ListSelectorKind = iota
	ListSelectorByID
	ListSelectorByName
)

type ListSelector struct {
	Kind ListSelectorKind
	ID   uint
	Name string
}

// AllLists selects every list owned by the token's user.
func AllLists() ListSelector {
	return ListSelector{Kind: ListSelectorAll}
}

func ListByID(id uint) ListSelector {
	return ListSelector{Kind: ListSelectorByID, ID: id}
}

func ListByName(name string) ListSelector {
	return ListSelector{Kind: ListSelectorByName, Name: name}
}

type TaskSelectorKind int

const (
	TaskSelectorByID TaskSelectorKind = iota
	TaskSelectorByList
)

type TaskSelector struct {
	Kind   TaskSelectorKind
	ID     uint
	ListID uint
}

func TaskByID(id uint) TaskSelector {
	return TaskSelector{Kind: TaskSelectorByID, ID: id}
}

func TasksByList(listID uint) TaskSelector {
	return TaskSelector{Kind: TaskSelectorByList, ListID: listID}
}

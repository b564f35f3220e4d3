package orders

type Status string

const (
	StatusPending        Status = "pending"
	StatusCompleted      Status = "completed"
	StatusArchived       Status = "archived"
	StatusCanceled       Status = "canceled"
	StatusRequiresAction Status = "requires_action"
)

var notAllocatable = map[Status]bool{
	StatusCanceled: true,
	StatusArchived: true,
}

// Allocatable: reservation boleh diubah selama order belum canceled/archived.
func Allocatable(s Status) bool {
	return !notAllocatable[s]
}

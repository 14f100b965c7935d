package ports

import "context"

// Event subjects published on entity changes.
const (
	SubjectUserRegistered = "todo.user.registered"
	SubjectUserDeleted    = "todo.user.deleted"
	SubjectListCreated    = "todo.list.created"
	SubjectListDeleted    = "todo.list.deleted"
	SubjectTaskCreated    = "todo.task.created"
	SubjectTaskDeleted    = "todo.task.deleted"
)

// EventPublisher fans entity change events out to interested consumers.
// Services treat a nil publisher as "events disabled"; publishing is
// best-effort and never fails the originating operation.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

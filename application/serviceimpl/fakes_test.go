package serviceimpl

import (
	"context"
	"sync"

	"todo-backend/domain/models"
)

// In-memory repositories backing the service tests. Rows keep insertion
// order, matching the creation-order contract of the real store.

type fakeUserRepo struct {
	mu               sync.Mutex
	users            []*models.User
	nextID           uint
	accessIDLookups  int
	credentialChecks int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credentialChecks++
	for _, u := range f.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByAccessID(ctx context.Context, accessID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessIDLookups++
	for _, u := range f.users {
		if u.AccessID == accessID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	tasks  []*models.Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1}
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) GetByListID(ctx context.Context, listID uint) ([]*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Task
	for _, t := range f.tasks {
		if t.ListID != nil && *t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) SetIsDone(ctx context.Context, id uint, isDone bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			t.IsDone = isDone
			return nil
		}
	}
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTaskRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.tasks)), nil
}

// detach mirrors the real repository's orphaning of tasks when their
// list goes away.
func (f *fakeTaskRepo) detach(listID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ListID != nil && *t.ListID == listID {
			t.ListID = nil
		}
	}
}

type fakeListRepo struct {
	mu     sync.Mutex
	lists  []*models.List
	nextID uint
	tasks  *fakeTaskRepo // optional, for orphaning on Delete
}

func newFakeListRepo(tasks *fakeTaskRepo) *fakeListRepo {
	return &fakeListRepo{nextID: 1, tasks: tasks}
}

func (f *fakeListRepo) Create(ctx context.Context, list *models.List) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list.ID = f.nextID
	f.nextID++
	f.lists = append(f.lists, list)
	return nil
}

func (f *fakeListRepo) GetByID(ctx context.Context, id uint) (*models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.lists {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeListRepo) GetByUserID(ctx context.Context, userID uint) ([]*models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.List
	for _, l := range f.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListRepo) GetByUserIDAndName(ctx context.Context, userID uint, name string) (*models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.lists {
		if l.UserID == userID && l.Name == name {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeListRepo) SetIsDone(ctx context.Context, id uint, isDone bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.lists {
		if l.ID == id {
			l.IsDone = isDone
			return nil
		}
	}
	return nil
}

func (f *fakeListRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.mu.Lock()
	for i, l := range f.lists {
		if l.ID == id {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			f.mu.Unlock()
			if f.tasks != nil {
				f.tasks.detach(id)
			}
			return true, nil
		}
	}
	f.mu.Unlock()
	return false, nil
}

func (f *fakeListRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.lists)), nil
}

type fakeTokenCache struct {
	mu          sync.Mutex
	entries     map[string]*models.User
	hits        int
	invalidated []string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{entries: make(map[string]*models.User)}
}

func (f *fakeTokenCache) GetUser(ctx context.Context, accessID string) (*models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.entries[accessID]
	if ok {
		f.hits++
	}
	return user, ok
}

func (f *fakeTokenCache) SetUser(ctx context.Context, accessID string, user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[accessID] = user
}

func (f *fakeTokenCache) Invalidate(ctx context.Context, accessID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, accessID)
	f.invalidated = append(f.invalidated, accessID)
}

type publishedEvent struct {
	Subject string
	Payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) Publish(ctx context.Context, subject string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{Subject: subject, Payload: payload})
	return nil
}

func (f *fakePublisher) subjects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Subject
	}
	return out
}

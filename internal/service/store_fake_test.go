package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/workflo/workflo-go/internal/model"
	"github.com/workflo/workflo-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the MySQL repository
// contract, including its sentinel errors.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]model.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u
	return &user, nil
}

func (f *fakeUserStore) delete(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

// fakeTaskStore is an in-memory TaskStore. Listing follows the repository
// contract (created_at descending), breaking timestamp ties by recency of
// insertion.
type fakeTaskStore struct {
	mu    sync.Mutex
	seq   int
	tasks map[string]fakeTaskRecord
}

type fakeTaskRecord struct {
	task model.Task
	seq  int
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]fakeTaskRecord)}
}

func (f *fakeTaskStore) Create(ctx context.Context, task *model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.tasks[task.ID] = fakeTaskRecord{task: *task, seq: f.seq}
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id string) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	task := rec.task
	return &task, nil
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var recs []fakeTaskRecord
	for _, rec := range f.tasks {
		if rec.task.OwnerID == ownerID {
			recs = append(recs, rec)
		}
	}

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].task.CreatedAt.Equal(recs[j].task.CreatedAt) {
			return recs[i].task.CreatedAt.After(recs[j].task.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	var tasks []model.Task
	for _, rec := range recs {
		tasks = append(tasks, rec.task)
	}
	return tasks, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.tasks[task.ID]
	if !ok {
		return repository.ErrTaskNotFound
	}
	rec.task = *task
	f.tasks[task.ID] = rec
	return nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

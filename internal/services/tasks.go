package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
	"github.com/google/uuid"
)

// TaskService manages one task list per owner email. Every mutation loads
// the owner's list, produces a new one, and persists it whole.
type TaskService interface {
	List(ctx context.Context, owner string) ([]models.Task, error)
	Add(ctx context.Context, owner, title string, priority models.Priority, dueDate string) (*models.Task, error)
	Toggle(ctx context.Context, owner, id string) error
	Delete(ctx context.Context, owner, id string) error
}

type taskService struct {
	store store.Store
	now   func() time.Time
}

func NewTaskService(st store.Store) TaskService {
	return &taskService{store: st, now: time.Now}
}

func (s *taskService) List(ctx context.Context, owner string) ([]models.Task, error) {
	data, err := s.store.Get(ctx, store.TasksKey(owner))
	if err != nil {
		return nil, err
	}
	return store.DecodeList[models.Task](data), nil
}

func (s *taskService) Add(ctx context.Context, owner, title string, priority models.Priority, dueDate string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorValidation
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, common.ErrorValidation
	}
	if dueDate == "" {
		dueDate = s.now().Format("2006-01-02")
	}

	task := &models.Task{
		Id:       uuid.NewString(),
		UserId:   owner,
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	}

	err := s.store.Update(ctx, store.TasksKey(owner), func(old []byte) ([]byte, error) {
		tasks := store.DecodeList[models.Task](old)
		return store.EncodeList(append(tasks, *task))
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Toggle(ctx context.Context, owner, id string) error {
	return s.store.Update(ctx, store.TasksKey(owner), func(old []byte) ([]byte, error) {
		tasks := store.DecodeList[models.Task](old)
		found := false
		for n := range tasks {
			if tasks[n].Id == id {
				tasks[n].Completed = !tasks[n].Completed
				found = true
				break
			}
		}
		if !found {
			return nil, common.ErrorNotFound
		}
		return store.EncodeList(tasks)
	})
}

func (s *taskService) Delete(ctx context.Context, owner, id string) error {
	return s.store.Update(ctx, store.TasksKey(owner), func(old []byte) ([]byte, error) {
		tasks := store.DecodeList[models.Task](old)
		kept := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Id != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return nil, common.ErrorNotFound
		}
		return store.EncodeList(kept)
	})
}

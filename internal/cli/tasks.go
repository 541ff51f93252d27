package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
)

func (a *App) owner() (string, error) {
	user := a.session.Current()
	if user == nil {
		return "", common.ErrorNotAuthenticated
	}
	return user.Email, nil
}

// Tasks prints the current user's task list with an optional
// all/active/done filter.
func (a *App) Tasks(ctx context.Context) error {

	owner, err := a.owner()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	filter, err := GetSimpleText(a.reader, "Filter (all/active/done, empty for all)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))

	tasks, err := a.taskService.List(ctx, owner)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	shown := 0
	for _, t := range tasks {
		if filter == "active" && t.Completed {
			continue
		}
		if filter == "done" && !t.Completed {
			continue
		}
		mark := " "
		if t.Completed {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %-8s due %s  %s  (%s)", mark, t.Priority, t.DueDate, t.Title, t.Id))
		shown++
	}
	if shown == 0 {
		printlnFn("No tasks")
	}
	return nil
}

func (a *App) AddTask(ctx context.Context) error {

	owner, err := a.owner()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	priority, err := GetSimpleText(a.reader, "Priority (Low/Medium/High, empty for Medium)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	dueDate, err := GetSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	task, err := a.taskService.Add(ctx, owner, title, models.Priority(priority), dueDate)
	if err != nil {
		log.Printf("Could not add task: %s", err.Error())
		return err
	}

	log.Printf("Added task %s", task.Id)
	return nil
}

func (a *App) ToggleTask(ctx context.Context) error {

	owner, err := a.owner()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := GetSimpleText(a.reader, "Task id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.taskService.Toggle(ctx, owner, id); err != nil {
		log.Printf("Could not toggle task: %s", err.Error())
		return err
	}

	log.Println("Task updated")
	return nil
}

func (a *App) DeleteTask(ctx context.Context) error {

	owner, err := a.owner()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	id, err := GetSimpleText(a.reader, "Task id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.taskService.Delete(ctx, owner, id); err != nil {
		log.Printf("Could not delete task: %s", err.Error())
		return err
	}

	log.Println("Task deleted")
	return nil
}

package model

import "fmt"

type Status string

const (
	StatusTodo Status = "Todo"
	StatusDone Status = "Done"
)

var validStatuses = []Status{StatusTodo, StatusDone}

func ValidateStatus(s Status) error {
	for _, v := range validStatuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q: must be one of Todo, Done", s)
}

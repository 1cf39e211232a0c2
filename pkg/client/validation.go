package client

import (
	"strings"

	"github.com/limbo/tendril/pkg/entity"
)

const postSeparator = "\n\n"

// PostText is the text analyzed for a post: title and content separated by a blank line.
func PostText(title, content string) string {
	return title + postSeparator + content
}

func ValidateTask(in TaskInput, today entity.Date) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if in.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Message: "Due date is required"}
	}
	if in.DueDate.Before(today) {
		return &ValidationError{Field: "due_date", Message: "Due date cannot be in the past. Please select today or a future date."}
	}
	return nil
}

func ValidatePost(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "Please fill in all fields"}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "Please fill in all fields"}
	}
	return nil
}

func ValidateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "Please enter a comment"}
	}
	return nil
}

func ValidateTip(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "Please fill in the tip content"}
	}
	return nil
}

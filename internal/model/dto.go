package model

// DTOTimeLayout is the fixed textual pattern for timestamps in external task representations.
const DTOTimeLayout = "2006-01-02 15:04"

// TaskDTO is the external representation of a task: enum codes rendered as
// names, timestamps formatted with DTOTimeLayout.
type TaskDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToDTO projects a task entity into its external representation. Pure transform.
func (t *Task) ToDTO() TaskDTO {
	dto := TaskDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		CreatedAt:   t.CreatedAt.Format(DTOTimeLayout),
		UpdatedAt:   t.UpdatedAt.Format(DTOTimeLayout),
	}
	if t.DueDate != nil {
		dto.DueDate = t.DueDate.Format(DTOTimeLayout)
	}
	return dto
}

// ToDTOs projects a slice preserving order.
func ToDTOs(tasks []*Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ToDTO())
	}
	return out
}

// UserDTO is the external representation of a user (no credential material).
type UserDTO struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(DTOTimeLayout),
	}
}

package dto

import "github.com/google/uuid"

type CreateBranchRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	BranchID *uuid.UUID `json:"branch_id"`
	Admin    bool       `json:"admin"`
}

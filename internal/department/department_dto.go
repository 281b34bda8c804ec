package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

package attendance

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	FullDay    *bool   `json:"full_day"`
	IsHoliday  bool    `json:"is_holiday"`
}

type UpdateAttendanceRequest struct {
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	FullDay   *bool   `json:"full_day"`
	IsHoliday *bool   `json:"is_holiday"`
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	FullDay    bool    `json:"full_day"`
	IsHoliday  bool    `json:"is_holiday"`
}

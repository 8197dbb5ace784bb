package payroll

// Employment types and payment statuses.
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"

	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// Employee is a staff member on the payroll.
type Employee struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	EmploymentType string  `json:"employmentType"`
	BaseSalary     float64 `json:"baseSalary"`
	Allowances     float64 `json:"allowances"`
	Deductions     float64 `json:"deductions"`
	HourlyRate     float64 `json:"hourlyRate"`
	PaymentStatus  string  `json:"paymentStatus"`
}

// WorkRecord logs billable hours for a day. The employee reference is weak;
// records whose employee has been removed still count toward daily totals.
type WorkRecord struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourlyRate"`
	Description string  `json:"description"`
}

// Payslip is the derived monthly earnings statement for one employee.
type Payslip struct {
	Employee   Employee     `json:"employee"`
	Period     string       `json:"period"`
	BaseSalary float64      `json:"baseSalary"`
	Allowances float64      `json:"allowances"`
	Deductions float64      `json:"deductions"`
	HourlyPay  float64      `json:"hourlyPay"`
	Records    []WorkRecord `json:"records"`
	Total      float64      `json:"total"`
}

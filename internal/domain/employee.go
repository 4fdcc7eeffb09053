package domain

import "errors"

// ErrEmployeeNotFound is returned when no record exists for an employee ID.
var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is a read-only view of an employee record in the HR table.
type Employee struct {
	EmployeeID       string `dynamodbav:"employeeId"`
	Name             string `dynamodbav:"name"`
	PTOBalance       int    `dynamodbav:"ptoBalance"`
	SickLeaveBalance int    `dynamodbav:"sickLeaveBalance"`
}

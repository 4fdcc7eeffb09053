package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"hr-assistant/internal/domain"
)

const (
	keyEmployeeID      = "employeeId"
	defaultEmployeeTag = "Employee"
)

// dynamodbAPI is the minimal DynamoDB interface required by Employees.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Employees reads employee records keyed by employeeId.
type Employees struct {
	api       dynamodbAPI
	tableName string
}

// New creates an Employees reader for the given table.
func New(api dynamodbAPI, tableName string) (*Employees, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Employees{api: api, tableName: tableName}, nil
}

// GetEmployee fetches a single employee record. It returns
// domain.ErrEmployeeNotFound when the table has no item for employeeID.
func (e *Employees) GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return domain.Employee{}, errors.New("repository: GetEmployee: employee ID is required")
	}

	out, err := e.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(e.tableName),
		Key: map[string]types.AttributeValue{
			keyEmployeeID: &types.AttributeValueMemberS{Value: employeeID},
		},
	})
	if err != nil {
		return domain.Employee{}, fmt.Errorf("repository: GetEmployee get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}

	emp, err := itemToEmployee(out.Item)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("repository: GetEmployee unmarshal: %w", err)
	}
	if emp.EmployeeID == "" {
		emp.EmployeeID = employeeID
	}
	return emp, nil
}

// itemToEmployee decodes an item, leaving absent balances at zero and
// falling back to a generic name.
func itemToEmployee(item map[string]types.AttributeValue) (domain.Employee, error) {
	var emp domain.Employee
	if err := attributevalue.UnmarshalMap(item, &emp); err != nil {
		return domain.Employee{}, err
	}
	if strings.TrimSpace(emp.Name) == "" {
		emp.Name = defaultEmployeeTag
	}
	return emp, nil
}

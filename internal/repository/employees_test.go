package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/domain"
)

type fakeDynamo struct {
	getOut       *dynamodb.GetItemOutput
	getErr       error
	getCalls     int
	lastGetInput *dynamodb.GetItemInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getCalls++
	f.lastGetInput = in
	return f.getOut, f.getErr
}

func makeEmployeeItem(id, name, pto, sick string) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"employeeId": &types.AttributeValueMemberS{Value: id},
	}
	if name != "" {
		item["name"] = &types.AttributeValueMemberS{Value: name}
	}
	if pto != "" {
		item["ptoBalance"] = &types.AttributeValueMemberN{Value: pto}
	}
	if sick != "" {
		item["sickLeaveBalance"] = &types.AttributeValueMemberN{Value: sick}
	}
	return item
}

func mustNew(t *testing.T, db *fakeDynamo) *Employees {
	t.Helper()
	e, err := New(db, "EmployeeData")
	require.NoError(t, err)
	return e
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "EmployeeData")
	require.ErrorContains(t, err, "api must not be nil")

	_, err = New(&fakeDynamo{}, "  ")
	require.ErrorContains(t, err, "table name must not be empty")
}

func TestGetEmployee_HappyPath(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeEmployeeItem("emp001", "Asha", "5", "2")}}
	e := mustNew(t, db)

	emp, err := e.GetEmployee(context.Background(), "emp001")
	require.NoError(t, err)
	require.Equal(t, domain.Employee{EmployeeID: "emp001", Name: "Asha", PTOBalance: 5, SickLeaveBalance: 2}, emp)

	require.Equal(t, "EmployeeData", *db.lastGetInput.TableName)
	key, ok := db.lastGetInput.Key["employeeId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "emp001", key.Value)
}

func TestGetEmployee_MissingFieldsUseDefaults(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeEmployeeItem("emp002", "", "", "")}}
	e := mustNew(t, db)

	emp, err := e.GetEmployee(context.Background(), "emp002")
	require.NoError(t, err)
	require.Equal(t, "Employee", emp.Name)
	require.Zero(t, emp.PTOBalance)
	require.Zero(t, emp.SickLeaveBalance)
}

func TestGetEmployee_NotFound(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{}}
	e := mustNew(t, db)

	_, err := e.GetEmployee(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestGetEmployee_GetItemError(t *testing.T) {
	db := &fakeDynamo{getErr: errors.New("boom")}
	e := mustNew(t, db)

	_, err := e.GetEmployee(context.Background(), "emp001")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEmployeeNotFound)
	require.Contains(t, err.Error(), "GetEmployee")
	require.Contains(t, err.Error(), "boom")
}

func TestGetEmployee_MalformedBalance(t *testing.T) {
	item := makeEmployeeItem("emp001", "Asha", "", "")
	item["ptoBalance"] = &types.AttributeValueMemberS{Value: "lots"}
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}
	e := mustNew(t, db)

	_, err := e.GetEmployee(context.Background(), "emp001")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unmarshal")
}

func TestGetEmployee_EmptyIDSkipsLookup(t *testing.T) {
	db := &fakeDynamo{}
	e := mustNew(t, db)

	_, err := e.GetEmployee(context.Background(), " ")
	require.Error(t, err)
	require.Zero(t, db.getCalls)
}

func TestGetEmployee_FractionalBalanceIsRejected(t *testing.T) {
	db := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: makeEmployeeItem("emp001", "Asha", "2.5", "1")}}
	e := mustNew(t, db)

	_, err := e.GetEmployee(context.Background(), "emp001")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEmployeeNotFound)
}

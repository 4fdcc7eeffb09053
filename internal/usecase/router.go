package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kendra/types"

	"hr-assistant/internal/domain"
)

const (
	IntentGetPTOBalance = "GetPTOBalanceIntent"
	IntentGetPolicy     = "GetPolicyIntent"

	SlotEmployeeID = "employeeId"
)

// EmployeeReader is satisfied by *repository.Employees.
type EmployeeReader interface {
	GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error)
}

// PolicySearcher is satisfied by *SearchService.
type PolicySearcher interface {
	Search(ctx context.Context, query string) ([]types.QueryResultItem, error)
}

// Router answers one bot turn by intent name. It keeps no state between
// turns; everything is derived from the incoming event.
type Router struct {
	employees EmployeeReader
	policies  PolicySearcher
	log       *slog.Logger
}

func NewRouter(employees EmployeeReader, policies PolicySearcher, log *slog.Logger) (*Router, error) {
	if employees == nil {
		return nil, errors.New("usecase: employee reader must not be nil")
	}
	if policies == nil {
		return nil, errors.New("usecase: policy searcher must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Router{employees: employees, policies: policies, log: log}, nil
}

// Route never fails: downstream errors become apology messages.
func (r *Router) Route(ctx context.Context, ev domain.DialogEvent) domain.DialogResponse {
	switch ev.IntentName() {
	case IntentGetPTOBalance:
		return r.ptoBalance(ctx, ev)
	case IntentGetPolicy:
		return r.policy(ctx, ev)
	default:
		return domain.Close(ev, msgUnknownIntent)
	}
}

func (r *Router) ptoBalance(ctx context.Context, ev domain.DialogEvent) domain.DialogResponse {
	employeeID, ok := ev.SlotValue(SlotEmployeeID)
	if !ok {
		return domain.ElicitSlot(ev, SlotEmployeeID, msgAskEmployeeID)
	}

	emp, err := r.employees.GetEmployee(ctx, employeeID)
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return domain.ElicitSlot(ev, SlotEmployeeID, msgEmployeeNotFound(employeeID))
	case err != nil:
		r.log.ErrorContext(ctx, "employee lookup failed", "sessionId", ev.SessionID, "err", err)
		return domain.Close(ev, msgPTOStoreFailure)
	}

	return domain.Close(ev, msgPTOBalance(emp.Name, employeeID, emp.PTOBalance, emp.SickLeaveBalance))
}

func (r *Router) policy(ctx context.Context, ev domain.DialogEvent) domain.DialogResponse {
	query := strings.TrimSpace(ev.InputTranscript)
	if query == "" {
		return domain.ElicitIntent(ev, msgAskPolicyTopic)
	}

	items, err := r.policies.Search(ctx, query)
	if err != nil {
		if CodeOf(err) == ErrorServiceUnavailable {
			return domain.Close(ev, msgPolicyUnavailable)
		}
		r.log.ErrorContext(ctx, "policy search failed", "sessionId", ev.SessionID, "err", err)
		return domain.Close(ev, msgPolicySearchFailure)
	}
	if len(items) == 0 {
		return domain.Close(ev, msgPolicyNotFound)
	}

	excerpt := firstExcerpt(items[0])
	if excerpt == "" {
		return domain.Close(ev, msgPolicyNoSnippet)
	}
	return domain.Close(ev, truncateRunes(excerpt, maxExcerptRunes))
}

func firstExcerpt(item types.QueryResultItem) string {
	if item.DocumentExcerpt == nil {
		return ""
	}
	return aws.ToString(item.DocumentExcerpt.Text)
}

package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/employee"
)

const testEmployeeID = "4f5a9b1e-6c2d-4e8f-9a0b-1c2d3e4f5a6b"

type fakeEmployeeRepo struct {
	byID    map[string]employee.Employee
	byName  map[string]*employee.Employee
	updated *employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:   make(map[string]employee.Employee),
		byName: make(map[string]*employee.Employee),
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-1"
	f.byID[emp.ID] = emp
	f.byName[emp.Name] = &emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByName(_ context.Context, name string) (*employee.Employee, error) {
	return f.byName[name], nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.updated = &emp
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.byID {
		out = append(out, emp)
	}
	return out, nil
}

type fakeAuditService struct {
	actions []audit.Action
}

func (f *fakeAuditService) Record(_ context.Context, action audit.Action, _ string, _ *string, _, _ any) {
	f.actions = append(f.actions, action)
}

func (f *fakeAuditService) List(context.Context, audit.ListFilter) ([]audit.EntryResponse, error) {
	return nil, nil
}

func (f *fakeAuditService) Clear(context.Context) error { return nil }

func TestCreate_Success(t *testing.T) {
	repo := newFakeEmployeeRepo()
	auditSvc := &fakeAuditService{}
	svc := NewEmployeeService(repo, auditSvc)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:   "Ana",
		PixKey: "ana@pix.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.ID)
	assert.Equal(t, []audit.Action{audit.ActionCreate}, auditSvc.actions)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byName["Ana"] = &employee.Employee{ID: "existing", Name: "Ana"}
	svc := NewEmployeeService(repo, &fakeAuditService{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Ana"})
	assert.ErrorIs(t, err, employee.ErrNameExists)
}

func TestCreate_ValidationError(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &fakeAuditService{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "  "})
	assert.Error(t, err)
}

func TestUpdate_RenameToTakenNameRejected(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byID[testEmployeeID] = employee.Employee{ID: testEmployeeID, Name: "Ana"}
	repo.byName["Bia"] = &employee.Employee{ID: "emp-2", Name: "Bia"}
	svc := NewEmployeeService(repo, &fakeAuditService{})

	name := "Bia"
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:   testEmployeeID,
		Name: &name,
	})
	assert.ErrorIs(t, err, employee.ErrNameExists)
}

func TestUpdate_PixKeyOnly(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byID[testEmployeeID] = employee.Employee{ID: testEmployeeID, Name: "Ana", PixKey: "old"}
	auditSvc := &fakeAuditService{}
	svc := NewEmployeeService(repo, auditSvc)

	pixKey := "ana@pix.example"
	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:     testEmployeeID,
		PixKey: &pixKey,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@pix.example", resp.PixKey)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, []audit.Action{audit.ActionUpdate}, auditSvc.actions)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &fakeAuditService{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

package leadintake

import (
	"context"
	"errors"
	"testing"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/estatedesk/lead-notification-service/internal/usecases/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockAPIKeyStore struct {
	mock.Mock
}

func (m *MockAPIKeyStore) FindActiveKey(ctx context.Context, key string) (*domain.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyStore) TouchKey(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) CreateLead(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Execute(ctx context.Context, raw dispatch.RawEvent, debug bool) (dispatch.Response, error) {
	args := m.Called(ctx, raw, debug)
	return args.Get(0).(dispatch.Response), args.Error(1)
}

// --- Tests ---

func TestIntakeExecuteSuccess(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "key-1").
		Return(&domain.APIKey{Key: "key-1", Source: "magicbricks", Active: true}, nil)
	keys.On("TouchKey", ctx, "key-1").Return(nil)

	var created *domain.Lead
	leads.On("CreateLead", ctx, mock.MatchedBy(func(l *domain.Lead) bool {
		created = l
		return true
	})).Return(nil)

	dispatcher.On("Execute", ctx, mock.MatchedBy(func(raw dispatch.RawEvent) bool {
		return raw.Type == "lead_created" && raw.LeadName == "Asha Verma"
	}), false).Return(dispatch.Response{Success: true}, nil)

	out, err := useCase.Execute(ctx, "key-1", WebhookInput{
		Name:  "Asha Verma",
		Email: "asha@example.in",
		Phone: "+919812345678",
	})

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.LeadID)
	assert.Equal(t, "magicbricks", out.Source)

	require.NotNil(t, created)
	assert.Equal(t, out.LeadID, created.ID)
	assert.Equal(t, domain.LeadStatusNew, created.Status)
	assert.Equal(t, "magicbricks", created.Source)
	assert.False(t, created.CreatedAt.IsZero())

	keys.AssertExpectations(t)
	leads.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestIntakeExecuteExplicitSourceWins(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "key-1").
		Return(&domain.APIKey{Key: "key-1", Source: "magicbricks", Active: true}, nil)
	keys.On("TouchKey", ctx, "key-1").Return(nil)
	leads.On("CreateLead", ctx, mock.Anything).Return(nil)
	dispatcher.On("Execute", ctx, mock.Anything, false).Return(dispatch.Response{Success: true}, nil)

	out, err := useCase.Execute(ctx, "key-1", WebhookInput{Name: "Asha", Source: "walk_in"})

	require.NoError(t, err)
	assert.Equal(t, "walk_in", out.Source)
}

func TestIntakeExecuteUnknownKey(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "bogus").Return(nil, errors.New("record not found"))

	_, err := useCase.Execute(ctx, "bogus", WebhookInput{Name: "Asha"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	leads.AssertNotCalled(t, "CreateLead", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestIntakeExecuteInactiveKey(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "revoked").
		Return(&domain.APIKey{Key: "revoked", Source: "old_portal", Active: false}, nil)

	_, err := useCase.Execute(ctx, "revoked", WebhookInput{Name: "Asha"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	leads.AssertNotCalled(t, "CreateLead", mock.Anything, mock.Anything)
}

func TestIntakeExecuteDispatchFailureDoesNotFailIntake(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "key-1").
		Return(&domain.APIKey{Key: "key-1", Source: "housing", Active: true}, nil)
	keys.On("TouchKey", ctx, "key-1").Return(nil)
	leads.On("CreateLead", ctx, mock.Anything).Return(nil)
	dispatcher.On("Execute", ctx, mock.Anything, false).
		Return(dispatch.Response{}, errors.New("dispatch blew up"))

	out, err := useCase.Execute(ctx, "key-1", WebhookInput{Name: "Asha"})

	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestIntakeExecuteCreateLeadError(t *testing.T) {
	ctx := context.Background()
	keys := new(MockAPIKeyStore)
	leads := new(MockLeadStore)
	dispatcher := new(MockDispatcher)
	useCase := NewUseCase(keys, leads, dispatcher)

	keys.On("FindActiveKey", ctx, "key-1").
		Return(&domain.APIKey{Key: "key-1", Source: "housing", Active: true}, nil)
	leads.On("CreateLead", ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := useCase.Execute(ctx, "key-1", WebhookInput{Name: "Asha"})

	assert.Error(t, err)
	dispatcher.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	keys.AssertNotCalled(t, "TouchKey", mock.Anything, mock.Anything)
}

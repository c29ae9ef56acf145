package authclient_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) Navigate(path string) {
	m.Called(path)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(message string) {
	m.Called(message)
}

type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Logout(ctx context.Context) {
	m.Called(ctx)
}

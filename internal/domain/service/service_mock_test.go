package service

import (
	"testing"

	"github.com/diegoclair/fractal-rotation-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockFractalService *mocks.MockFractalService
	mockJokeProvider   *mocks.MockJokeProvider
	mockNotifier       *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockFractalService: mocks.NewMockFractalService(ctrl),
		mockJokeProvider:   mocks.NewMockJokeProvider(ctrl),
		mockNotifier:       mocks.NewMockNotifier(ctrl),
	}

	return
}

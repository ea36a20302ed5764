package tools_test

import (
	"context"
	"testing"
	"ulascansenturk/weather-mcp/internal/mocks"
	"ulascansenturk/weather-mcp/internal/tools"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockService *mocks.MockWeatherService
	dispatcher  *tools.Dispatcher
	ctx         context.Context
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockService = mocks.NewMockWeatherService(s.T())
	s.dispatcher = tools.NewDispatcher(s.mockService)
	s.ctx = context.Background()
}

func ptr(v float64) *float64 { return &v }

func (s *DispatcherTestSuite) TestAlertsNormalisesState() {
	s.mockService.On("AlertsUS", mock.Anything, "CA").Return("alerts report").Once()

	s.Equal("alerts report", s.dispatcher.GetAlertsUS(s.ctx, tools.AlertsInput{State: " ca "}))
}

func (s *DispatcherTestSuite) TestAlertsMissingState() {
	for _, state := range []string{"", "   "} {
		s.Equal("Please provide a state code (e.g., CA, NY).", s.dispatcher.GetAlertsUS(s.ctx, tools.AlertsInput{State: state}))
	}

	s.mockService.AssertNotCalled(s.T(), "AlertsUS", mock.Anything, mock.Anything)
}

func (s *DispatcherTestSuite) TestForecastUS() {
	s.mockService.On("ForecastUS", mock.Anything, 39.7456, -97.0892).Return("us report").Once()

	result := s.dispatcher.GetForecastUS(s.ctx, tools.CoordinatesInput{Latitude: ptr(39.7456), Longitude: ptr(-97.0892)})

	s.Equal("us report", result)
}

func (s *DispatcherTestSuite) TestZeroCoordinatesAreNotMissing() {
	s.mockService.On("ForecastInternational", mock.Anything, 0.0, 0.0).Return("gulf of guinea").Once()

	result := s.dispatcher.GetForecastInternational(s.ctx, tools.CoordinatesInput{Latitude: ptr(0), Longitude: ptr(0)})

	s.Equal("gulf of guinea", result)
}

func (s *DispatcherTestSuite) TestMissingCoordinates() {
	inputs := []tools.CoordinatesInput{
		{},
		{Latitude: ptr(10)},
		{Longitude: ptr(10)},
	}

	for _, in := range inputs {
		s.Equal("Please provide latitude and longitude.", s.dispatcher.GetForecastUS(s.ctx, in))
		s.Equal("Please provide latitude and longitude.", s.dispatcher.GetForecastInternational(s.ctx, in))
	}

	s.mockService.AssertNotCalled(s.T(), "ForecastUS", mock.Anything, mock.Anything, mock.Anything)
	s.mockService.AssertNotCalled(s.T(), "ForecastInternational", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DispatcherTestSuite) TestDescriptors() {
	descriptors, err := tools.Descriptors()
	s.Require().NoError(err)
	s.Require().Len(descriptors, 3)

	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
		s.NotEmpty(d.Description)
		s.Require().NotNil(d.InputSchema)
		s.Equal("object", d.InputSchema.Type)
		// Missing arguments are reported by the tool itself, not by schema validation.
		s.Empty(d.InputSchema.Required, d.Name)
	}
	s.Equal([]string{"get_alerts_us", "get_forecast_us", "get_forecast_international"}, names)

	s.Contains(descriptors[0].InputSchema.Properties, "state")
	s.Contains(descriptors[1].InputSchema.Properties, "latitude")
	s.Contains(descriptors[2].InputSchema.Properties, "longitude")
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

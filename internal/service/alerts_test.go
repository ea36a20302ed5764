package service_test

import (
	"context"
	"strings"
	"testing"
	"ulascansenturk/weather-mcp/internal/mocks"
	"ulascansenturk/weather-mcp/internal/payload"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-mcp/internal/service"
)

const alertsURL = "https://api.weather.gov/alerts/active/area/CA"

func decode(r *require.Assertions, body string) payload.Object {
	doc, err := payload.Decode(strings.NewReader(body))
	r.NoError(err)
	return doc
}

type AlertsTestSuite struct {
	suite.Suite
	mockClient *mocks.MockClient
	service    service.WeatherService
	ctx        context.Context
}

func (s *AlertsTestSuite) SetupTest() {
	s.mockClient = mocks.NewMockClient(s.T())
	s.service = service.NewWeatherService(s.mockClient, service.DefaultEndpoints())
	s.ctx = context.Background()
}

func (s *AlertsTestSuite) TestRendersEveryFeatureInOrder() {
	doc := decode(s.Require(), `{"features": [
		{"properties": {"event": "Flood Watch", "areaDesc": "Napa", "severity": "Severe",
			"description": "Rising water.", "instruction": "Move to higher ground."}},
		{"properties": {"event": "Heat Advisory", "areaDesc": "Fresno", "severity": "Moderate",
			"description": "Hot.", "instruction": "Drink water."}}
	]}`)
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(doc, true).Once()

	result := s.service.AlertsUS(s.ctx, "CA")

	blocks := strings.Split(result, "\n---\n")
	s.Require().Len(blocks, 2)
	s.Equal("\nEvent: Flood Watch\nArea: Napa\nSeverity: Severe\nDescription: Rising water.\nInstructions: Move to higher ground.\n", blocks[0])
	s.Contains(blocks[1], "Event: Heat Advisory")
	s.Contains(blocks[1], "Area: Fresno")
}

func (s *AlertsTestSuite) TestMissingFieldsUseFallbacks() {
	doc := decode(s.Require(), `{"features": [{"properties": {"event": "Wind Advisory", "instruction": null}}, {}]}`)
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(doc, true)

	result := s.service.AlertsUS(s.ctx, "CA")

	blocks := strings.Split(result, "\n---\n")
	s.Require().Len(blocks, 2)
	s.Equal("\nEvent: Wind Advisory\nArea: Unknown\nSeverity: Unknown\nDescription: No description available\nInstructions: No specific instructions provided\n", blocks[0])
	s.Equal("\nEvent: Unknown\nArea: Unknown\nSeverity: Unknown\nDescription: No description available\nInstructions: No specific instructions provided\n", blocks[1])
}

func (s *AlertsTestSuite) TestEmptyFeatures() {
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(decode(s.Require(), `{"features": []}`), true)

	s.Equal("No active alerts for this state.", s.service.AlertsUS(s.ctx, "CA"))
}

func (s *AlertsTestSuite) TestNullFeatures() {
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(decode(s.Require(), `{"features": null}`), true)

	s.Equal(service.MsgNoActiveAlerts, s.service.AlertsUS(s.ctx, "CA"))
}

func (s *AlertsTestSuite) TestFetchFailure() {
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(nil, false)

	s.Equal("Unable to fetch alerts or no alerts found.", s.service.AlertsUS(s.ctx, "CA"))
}

func (s *AlertsTestSuite) TestMissingFeaturesKey() {
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(decode(s.Require(), `{"title": "alerts"}`), true)

	s.Equal(service.MsgAlertsUnavailable, s.service.AlertsUS(s.ctx, "CA"))
}

func (s *AlertsTestSuite) TestNonArrayFeatures() {
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(decode(s.Require(), `{"features": "none"}`), true)

	s.Equal(service.MsgAlertsUnavailable, s.service.AlertsUS(s.ctx, "CA"))
}

func (s *AlertsTestSuite) TestIdempotent() {
	doc := decode(s.Require(), `{"features": [{"properties": {"event": "Frost Advisory"}}]}`)
	s.mockClient.On("Fetch", mock.Anything, alertsURL).Return(doc, true).Twice()

	first := s.service.AlertsUS(s.ctx, "CA")
	second := s.service.AlertsUS(s.ctx, "CA")

	s.Equal(first, second)
}

func TestAlertsSuite(t *testing.T) {
	suite.Run(t, new(AlertsTestSuite))
}

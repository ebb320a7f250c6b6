package mocks

import "github.com/ibroximov13/FindCourse/domain"

// MockDeviceParser implements domain.DeviceParser for testing
type MockDeviceParser struct {
	ParseFunc func(userAgent string) domain.DeviceInfo
}

var _ domain.DeviceParser = (*MockDeviceParser)(nil)

func NewMockDeviceParser() *MockDeviceParser {
	return &MockDeviceParser{}
}

func (m *MockDeviceParser) Parse(userAgent string) domain.DeviceInfo {
	if m.ParseFunc != nil {
		return m.ParseFunc(userAgent)
	}
	return domain.DeviceInfo{Browser: "Chrome", OS: "Linux", Device: "desktop"}
}

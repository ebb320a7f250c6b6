package devices

import (
	"github.com/mssola/useragent"

	"github.com/ibroximov13/FindCourse/domain"
)

// ParserImpl implements domain.DeviceParser on top of a user-agent parser.
type ParserImpl struct{}

// NewParser creates a device parser
func NewParser() domain.DeviceParser {
	return &ParserImpl{}
}

// Parse implements domain.DeviceParser
func (p *ParserImpl) Parse(rawUA string) domain.DeviceInfo {
	ua := useragent.New(rawUA)

	browser, version := ua.Browser()
	device := "desktop"
	if ua.Mobile() {
		device = "mobile"
	}

	return domain.DeviceInfo{
		Browser:        browser,
		BrowserVersion: version,
		OS:             ua.OS(),
		Device:         device,
		Bot:            ua.Bot(),
	}
}

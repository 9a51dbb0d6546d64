package testutil

import (
	"github.com/sdiehl/ipython/pkg/mime"
	"github.com/stretchr/testify/mock"
)

// MockFormatter is a mock implementation of types.Formatter
type MockFormatter struct {
	mock.Mock
}

func (m *MockFormatter) Format(obj interface{}, include, exclude mime.Set) (mime.Bundle, error) {
	args := m.Called(obj, include, exclude)
	bundle, _ := args.Get(0).(mime.Bundle)
	return bundle, args.Error(1)
}

// MockPublisher is a mock implementation of types.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(source string, data mime.Bundle) error {
	return m.Called(source, data).Error(0)
}

func (m *MockPublisher) PublishPretty(text string) error {
	return m.Called(text).Error(0)
}

func (m *MockPublisher) PublishHTML(html string) error {
	return m.Called(html).Error(0)
}

func (m *MockPublisher) PublishMarkdown(markdown string) error {
	return m.Called(markdown).Error(0)
}

func (m *MockPublisher) PublishSVG(svg string) error {
	return m.Called(svg).Error(0)
}

func (m *MockPublisher) PublishPNG(png []byte) error {
	return m.Called(png).Error(0)
}

func (m *MockPublisher) PublishJPEG(jpeg []byte) error {
	return m.Called(jpeg).Error(0)
}

func (m *MockPublisher) PublishLatex(latex string) error {
	return m.Called(latex).Error(0)
}

func (m *MockPublisher) PublishJSON(json string) error {
	return m.Called(json).Error(0)
}

func (m *MockPublisher) PublishJavascript(js string) error {
	return m.Called(js).Error(0)
}

func (m *MockPublisher) ClearOutput(stdout, stderr, other bool) error {
	return m.Called(stdout, stderr, other).Error(0)
}

// MockFetcher is a mock implementation of types.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(url string) ([]byte, error) {
	args := m.Called(url)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

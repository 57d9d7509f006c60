package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MikhailRaia/testpost/internal/codec"
	"github.com/MikhailRaia/testpost/internal/config"
	"github.com/MikhailRaia/testpost/internal/content"
	"github.com/MikhailRaia/testpost/internal/storage/file"
	"github.com/MikhailRaia/testpost/internal/storage/memory"
)

type AppTestSuite struct {
	suite.Suite
	cfg     *config.Config
	storage *memory.Storage
	stdout  *bytes.Buffer
}

func (suite *AppTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		BaseURL:    config.DefaultBaseURL,
		OutputPath: config.DefaultOutputPath,
		Encoding:   config.DefaultEncoding,
		LogLevel:   config.DefaultLogLevel,
	}
	suite.storage = memory.NewStorage()
	suite.stdout = &bytes.Buffer{}
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (suite *AppTestSuite) run(stdin string) error {
	application, err := New(suite.cfg, suite.storage, strings.NewReader(stdin), suite.stdout)
	suite.Require().NoError(err)
	return application.Run(context.Background())
}

func (suite *AppTestSuite) lines() []string {
	return strings.Split(strings.TrimSuffix(suite.stdout.String(), "\n"), "\n")
}

func (suite *AppTestSuite) TestRun_Default() {
	suite.Require().NoError(suite.run(""))

	lines := suite.lines()
	suite.Require().Len(lines, 19)

	banner := strings.Repeat("=", 80)
	suite.Equal(banner, lines[0])
	suite.Equal("TEST POST GENERATOR", lines[1])
	suite.Equal(banner, lines[2])
	suite.Equal("Title: Lorem Ipsum Decoder Test", lines[3])
	suite.Equal("Original HTML: "+strconv.Itoa(len(content.DefaultBody))+" bytes", lines[4])
	suite.True(strings.HasPrefix(lines[5], "Compressed: "))
	suite.True(strings.HasSuffix(lines[5], " bytes"))
	suite.Equal("", lines[7])
	suite.Equal("Base64 Encoded Data:", lines[8])
	suite.Len(lines[9], 53)
	suite.True(strings.HasSuffix(lines[9], "..."))
	suite.Equal("", lines[10])
	suite.Equal("Decoder URL:", lines[11])
	suite.Equal("", lines[13])
	suite.Equal(banner, lines[14])
	suite.Equal("Copy the URL above to test in browser!", lines[15])
	suite.Equal(banner, lines[16])
	suite.Equal("", lines[17])
	suite.Equal("URL saved to: /tmp/test_url.txt", lines[18])

	percent := strings.TrimSuffix(strings.TrimPrefix(lines[6], "Compression: "), "%")
	ratio, err := strconv.ParseFloat(percent, 64)
	suite.Require().NoError(err)
	suite.Greater(ratio, 0.0)
	suite.Less(ratio, 100.0)

	url, found := suite.storage.URL()
	suite.Require().True(found)
	suite.Equal(lines[12], url)
	suite.True(strings.HasPrefix(url, "https://jay3779.github.io/decoder.html#Lorem%20Ipsum%20Decoder%20Test/"))

	payload := strings.TrimPrefix(url, "https://jay3779.github.io/decoder.html#Lorem%20Ipsum%20Decoder%20Test/")
	suite.Equal(payload[:50]+"...", lines[9])

	compressed, err := codec.DecodePayload(payload)
	suite.Require().NoError(err)
	body, err := codec.Decompress(compressed)
	suite.Require().NoError(err)
	suite.Equal(content.DefaultBody, string(body))

	report, found := suite.storage.Report()
	suite.Require().True(found)
	suite.Equal(url, report.DecoderURL)
	suite.Equal(percent+"%", report.Ratio)
}

func (suite *AppTestSuite) TestRun_Stdin() {
	suite.cfg.InputPath = content.StdinPath
	suite.cfg.Encoding = "url"

	suite.Require().NoError(suite.run("<html><head><title>Piped Post</title></head><body><p>" +
		strings.Repeat("Lorem ipsum dolor sit amet. ", 20) + "</p></body></html>"))

	lines := suite.lines()
	suite.Equal("Title: Piped Post", lines[3])

	url, found := suite.storage.URL()
	suite.Require().True(found)
	suite.True(strings.HasPrefix(url, "https://jay3779.github.io/decoder.html#Piped%20Post/"))
	suite.NotContains(url, "=")
}

func (suite *AppTestSuite) TestRun_TitleOverride() {
	suite.cfg.Title = "Custom Title"

	suite.Require().NoError(suite.run(""))

	url, _ := suite.storage.URL()
	suite.True(strings.HasPrefix(url, "https://jay3779.github.io/decoder.html#Custom%20Title/"))
	suite.Equal("Title: Custom Title", suite.lines()[3])
}

func (suite *AppTestSuite) TestRun_TitleWithSlash() {
	suite.cfg.Title = "Client/Server Notes"

	suite.Require().NoError(suite.run(""))

	lines := suite.lines()
	suite.Require().Len(lines, 19)
	suite.Equal("Title: Client/Server Notes", lines[3])

	url, found := suite.storage.URL()
	suite.Require().True(found)
	suite.Equal(lines[12], url)
	suite.True(strings.HasPrefix(url, "https://jay3779.github.io/decoder.html#Client/Server%20Notes/"))
	suite.Equal("URL saved to: /tmp/test_url.txt", lines[18])
}

func (suite *AppTestSuite) TestRun_DerivedTitleWithSlash() {
	suite.cfg.InputPath = content.StdinPath

	suite.Require().NoError(suite.run("<h1>TCP/IP Basics</h1><p>" + strings.Repeat("Lorem ipsum. ", 10) + "</p>"))

	suite.Equal("Title: TCP/IP Basics", suite.lines()[3])

	url, found := suite.storage.URL()
	suite.Require().True(found)
	suite.True(strings.HasPrefix(url, "https://jay3779.github.io/decoder.html#TCP/IP%20Basics/"))
}

func (suite *AppTestSuite) TestRun_Minify() {
	suite.cfg.Minify = true

	suite.Require().NoError(suite.run(""))

	prefix := "Original HTML: "
	sizeLine := suite.lines()[4]
	size, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(sizeLine, prefix), " bytes"))
	suite.Require().NoError(err)
	suite.Less(size, len(content.DefaultBody))
}

func (suite *AppTestSuite) TestRun_EmptyInput() {
	suite.cfg.InputPath = content.StdinPath

	suite.Error(suite.run(""))
	suite.Empty(suite.stdout.String())
	suite.Equal(0, suite.storage.URLSaves())
}

func (suite *AppTestSuite) TestNew_InvalidEncoding() {
	suite.cfg.Encoding = "hex"

	_, err := New(suite.cfg, suite.storage, nil, suite.stdout)
	suite.Error(err)
}

func (suite *AppTestSuite) TestRun_FileStorageIdempotent() {
	dir := suite.T().TempDir()
	suite.cfg.OutputPath = filepath.Join(dir, "test_url.txt")
	suite.cfg.ReportPath = filepath.Join(dir, "test-post.json")

	var contents [][]byte
	for i := 0; i < 2; i++ {
		stdout := &bytes.Buffer{}
		application, err := New(suite.cfg, file.NewStorage(suite.cfg.OutputPath, suite.cfg.ReportPath), nil, stdout)
		suite.Require().NoError(err)
		suite.Require().NoError(application.Run(context.Background()))

		data, err := os.ReadFile(suite.cfg.OutputPath)
		suite.Require().NoError(err)
		contents = append(contents, data)

		lines := strings.Split(stdout.String(), "\n")
		suite.Equal(lines[12], string(data))
		suite.Equal("URL saved to: "+suite.cfg.OutputPath, lines[18])
	}

	suite.Equal(contents[0], contents[1])
	suite.NotEmpty(contents[0])
	suite.NotContains(string(contents[0]), "\n")

	_, err := os.Stat(suite.cfg.ReportPath)
	suite.NoError(err)
}

func (suite *AppTestSuite) TestRun_UnwritableOutput() {
	suite.cfg.OutputPath = filepath.Join(suite.T().TempDir(), "missing", "test_url.txt")

	application, err := New(suite.cfg, file.NewStorage(suite.cfg.OutputPath, ""), nil, suite.stdout)
	suite.Require().NoError(err)

	suite.Error(application.Run(context.Background()))
	suite.Contains(suite.stdout.String(), "Copy the URL above to test in browser!")
	suite.NotContains(suite.stdout.String(), "URL saved to:")
}

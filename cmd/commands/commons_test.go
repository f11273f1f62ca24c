package commands

import (
	"bytes"
	"testing"

	"go.uber.org/zap"

	"github.com/gi4nks/wrap-pkg-config/internal/pkgconfig"
	"github.com/gi4nks/wrap-pkg-config/internal/pkgconfig/mocks"
	"github.com/gi4nks/wrap-pkg-config/internal/utils"
)

type testFixture struct {
	logger *zap.Logger
	runner *mocks.MockRunner
	stdout *bytes.Buffer
}

func setupTest(t *testing.T) *testFixture {
	return &testFixture{
		logger: zap.NewNop(),
		runner: mocks.NewMockRunner(),
		stdout: &bytes.Buffer{},
	}
}

// rootCommand builds a root command for platform writing to the fixture's stdout.
func (f *testFixture) rootCommand(platform string) *RootCommand {
	config := &utils.Configuration{Tool: utils.DefaultTool, Platform: platform}
	invoker := pkgconfig.NewInvoker(f.logger, config, f.runner)

	rc := NewRootCommand(f.logger, invoker)
	rc.cmd.SetOut(f.stdout)
	return rc
}

func (f *testFixture) tearDown() {

}
